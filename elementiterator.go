package chaintable

// Elements - Is used to iterate over stored elements one by one, bucket by bucket.
// The table must not be changed while iterating.
type Elements[T any] struct {
	buckets  [][]T
	bucketNo int
	position int
}

// Iterator - Returns a pointer to a new Elements struct positioned before the first stored element
func (S *SeparateChainingHashTable[T]) Iterator() *Elements[T] {
	buckets := make([][]T, 0, S.numberOfBuckets)
	for _, b := range S.buckets {
		if len(b.Records) > 0 {
			buckets = append(buckets, b.Records)
		}
	}

	return &Elements[T]{buckets: buckets}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next.
func (E *Elements[T]) HasNext() bool {
	return E.bucketNo < len(E.buckets)
}

// Next - Returns element.
// It returns:
//   - element is the next stored element.
//   - err is of type NoRecordFound if there are no more elements when calling this function.
func (E *Elements[T]) Next() (element T, err error) {
	if E.bucketNo >= len(E.buckets) {
		err = NoRecordFound{}
		return
	}

	element = E.buckets[E.bucketNo][E.position]

	E.position++
	if E.position >= len(E.buckets[E.bucketNo]) {
		E.bucketNo++
		E.position = 0
	}

	return
}
