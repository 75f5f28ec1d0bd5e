package hashfunc

// Element - Interface that any type stored in a SeparateChainingHashTable has to follow. It is used as a type
// constraint so that hashing and equality are resolved at compile time for the concrete element type.
//
// Implementations must keep HashCode and Equals consistent, i.e. two elements that are equal must always return the
// same hash code. The hash code may be negative, the table takes care of mapping it to a valid bucket.
type Element[T any] interface {
	// HashCode - Returns a deterministic hash value for the element's identity
	HashCode() int64

	// Equals - Returns true if the element has the same identity as other
	Equals(other T) bool
}
