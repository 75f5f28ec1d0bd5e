package model

// Bucket - Represents all elements that share one hash slot, in insertion order
type Bucket[T any] struct {
	Records []T
}

// StorageParameters - Represents parameters of an in-memory separate chaining table
//   - NumberOfBuckets is the fixed number of buckets the table was created with
//   - Records is the number of elements currently stored
type StorageParameters struct {
	NumberOfBuckets int64
	Records         int64
}
