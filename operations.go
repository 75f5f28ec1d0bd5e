package chaintable

import (
	"reflect"
)

// Insert - Updates an existing element with the given one or adds it if no equal element is found.
// An existing equal element is overwritten in place, so the number of stored elements stays the same.
//   - element is the element to store
//
// It returns:
//   - err is of type InvalidElement if element is nil
func (S *SeparateChainingHashTable[T]) Insert(element T) (err error) {
	if S.checkNil && isNil(element) {
		err = InvalidElement{}
		return
	}

	bucketNo := S.getBucketNo(element)
	bucket := &S.buckets[bucketNo]

	i := indexInBucket(bucket.Records, element)
	if i >= 0 {
		bucket.Records[i] = element
		return
	}

	bucket.Records = append(bucket.Records, element)
	S.records++

	return
}

// Contains - Returns whether an element equal to the given one is stored. The table is not changed.
//   - element is the element to look for
//
// It returns:
//   - found is true if an equal element is stored
//   - err is of type InvalidElement if element is nil
func (S *SeparateChainingHashTable[T]) Contains(element T) (found bool, err error) {
	if S.checkNil && isNil(element) {
		err = InvalidElement{}
		return
	}

	bucketNo := S.getBucketNo(element)
	found = indexInBucket(S.buckets[bucketNo].Records, element) >= 0

	return
}

// Get - Returns the stored element that is equal to the given one.
//   - element is the element to look for, only its identity is used
//
// It returns:
//   - stored is the matching element if found, if not found an error of type NoRecordFound is also returned.
//   - err is either of type NoRecordFound or InvalidElement
func (S *SeparateChainingHashTable[T]) Get(element T) (stored T, err error) {
	if S.checkNil && isNil(element) {
		err = InvalidElement{}
		return
	}

	bucketNo := S.getBucketNo(element)
	records := S.buckets[bucketNo].Records

	i := indexInBucket(records, element)
	if i < 0 {
		err = NoRecordFound{}
		return
	}

	stored = records[i]

	return
}

// Remove - Removes the element equal to the given one. Removing an element that is not stored is a no-op.
// The relative order of the remaining elements in the bucket is not preserved.
//   - element is the element to remove
//
// It returns:
//   - removed is true if an equal element was found and removed
//   - err is of type InvalidElement if element is nil
func (S *SeparateChainingHashTable[T]) Remove(element T) (removed bool, err error) {
	if S.checkNil && isNil(element) {
		err = InvalidElement{}
		return
	}

	bucketNo := S.getBucketNo(element)
	bucket := &S.buckets[bucketNo]

	i := indexInBucket(bucket.Records, element)
	if i < 0 {
		return
	}

	// Move last element into the freed spot and clear the tail so it can be garbage collected
	last := len(bucket.Records) - 1
	bucket.Records[i] = bucket.Records[last]
	var zero T
	bucket.Records[last] = zero
	bucket.Records = bucket.Records[:last]

	S.records--
	removed = true

	return
}

// GetBucketNo - Returns which bucket number that the given element results in
//   - element is the element to hash, it must not be nil
func (S *SeparateChainingHashTable[T]) GetBucketNo(element T) (bucketNo int64, err error) {
	if S.checkNil && isNil(element) {
		err = InvalidElement{}
		return
	}

	bucketNo = S.getBucketNo(element)

	return
}

// getBucketNo - Returns the bucket number for an element already checked for nil
func (S *SeparateChainingHashTable[T]) getBucketNo(element T) int64 {
	return S.bucketAlg.BucketNumber(element.HashCode())
}

// indexInBucket - Returns the position of an element equal to element in records, or -1 if there is none
func indexInBucket[T interface{ Equals(T) bool }](records []T, element T) int {
	for i, r := range records {
		if r.Equals(element) {
			return i
		}
	}

	return -1
}

// isNillable - Returns true if values of type T can be nil
func isNillable[T any]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	}

	return false
}

// isNil - Returns true if element is a nil pointer, interface, map, slice, func or chan
func isNil(element any) bool {
	if element == nil {
		return true
	}

	v := reflect.ValueOf(element)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}

	return false
}
