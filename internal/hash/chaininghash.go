package hash

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm. It takes the hash value supplied by
// an element and applies bucket = uint64(hash) % tableSize to get the bucket number.
// The unsigned cast keeps negative hash values from producing negative bucket numbers, and the table size is used as
// is (no rounding up to a power of 2) since callers size the table as 2N+1.
type SeparateChainingHashAlgorithm struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm(tableSize int64) *SeparateChainingHashAlgorithm {
	ha := &SeparateChainingHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
//   - tableSize is the number of buckets the table will address, must be higher than 0 (zero)
func (S *SeparateChainingHashAlgorithm) SetTableSize(tableSize int64) {
	S.tableSize = tableSize
}

// BucketNumber - Given a hash value it generates a bucket number between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm) BucketNumber(hashValue int64) int64 {
	return int64(uint64(hashValue) % uint64(S.tableSize))
}

// GetTableSize - Returns the table size the algorithm distributes over
func (S *SeparateChainingHashAlgorithm) GetTableSize() int64 {
	return S.tableSize
}
