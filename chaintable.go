package chaintable

import (
	"github.com/gostonefire/chaintable/hashfunc"
	"github.com/gostonefire/chaintable/internal/hash"
	"github.com/gostonefire/chaintable/internal/model"
)

// TableInfo - Information structure containing some information about the hash table
//   - NumberOfBuckets is the fixed number of buckets in the table
//   - Records is the number of elements currently stored
//   - LoadFactor is Records divided by NumberOfBuckets
type TableInfo struct {
	NumberOfBuckets int64
	Records         int64
	LoadFactor      float64
}

// TableStat - Statistics on the overall usage and distribution over buckets
//   - Records is the total number of elements stored
//   - UsedBuckets is the number of buckets holding at least one element
//   - LongestChain is the number of elements in the most crowded bucket
//   - BucketDistribution is the number of elements stored in each available bucket
type TableStat struct {
	Records            int64
	UsedBuckets        int64
	LongestChain       int64
	BucketDistribution []int64
}

// SeparateChainingHashTable - The main implementation struct. Each bucket holds a chain of elements that hashed to
// the same bucket number. The number of buckets is fixed for the lifetime of the table, there is no rehashing.
type SeparateChainingHashTable[T hashfunc.Element[T]] struct {
	buckets         []model.Bucket[T]
	bucketAlg       *hash.SeparateChainingHashAlgorithm
	numberOfBuckets int64
	records         int64
	checkNil        bool
}

// NewSeparateChainingHashTable - Returns a new empty table with capacity number of buckets.
//   - capacity is the number of buckets, it has to be higher than 0 (zero)
//
// It returns:
//   - table is a pointer to a SeparateChainingHashTable struct
//   - err is of type InvalidCapacity if capacity is 0 (zero) or negative
func NewSeparateChainingHashTable[T hashfunc.Element[T]](capacity int64) (table *SeparateChainingHashTable[T], err error) {
	// Check if capacity is valid
	if capacity <= 0 {
		err = InvalidCapacity{}
		return
	}

	table = &SeparateChainingHashTable[T]{
		buckets:         make([]model.Bucket[T], capacity),
		bucketAlg:       hash.NewSeparateChainingHashAlgorithm(capacity),
		numberOfBuckets: capacity,
		checkNil:        isNillable[T](),
	}

	return
}

// Len - Returns the number of elements currently stored
func (S *SeparateChainingHashTable[T]) Len() int64 {
	return S.records
}

// GetTableInfo - Returns a TableInfo struct with the current size and load of the table
func (S *SeparateChainingHashTable[T]) GetTableInfo() (info TableInfo) {
	sp := S.getStorageParameters()

	info = TableInfo{
		NumberOfBuckets: sp.NumberOfBuckets,
		Records:         sp.Records,
		LoadFactor:      float64(sp.Records) / float64(sp.NumberOfBuckets),
	}

	return
}

// Stat - Walks through the entire set of buckets and produce a TableStat struct with information.
//   - includeDistribution set to true will include a slice of length NumberOfBuckets with number of elements per bucket, false will set TableStat.BucketDistribution to nil.
func (S *SeparateChainingHashTable[T]) Stat(includeDistribution bool) (tableStat *TableStat) {
	var ts TableStat

	if includeDistribution {
		ts.BucketDistribution = make([]int64, S.numberOfBuckets)
	}

	for i := int64(0); i < S.numberOfBuckets; i++ {
		chain := int64(len(S.buckets[i].Records))
		if chain == 0 {
			continue
		}

		ts.Records += chain
		ts.UsedBuckets++
		if chain > ts.LongestChain {
			ts.LongestChain = chain
		}
		if includeDistribution {
			ts.BucketDistribution[i] = chain
		}
	}

	tableStat = &ts
	return
}

// getStorageParameters - Returns a struct with storage parameters of the table
func (S *SeparateChainingHashTable[T]) getStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		NumberOfBuckets: S.numberOfBuckets,
		Records:         S.records,
	}

	return
}
