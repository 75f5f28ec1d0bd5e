package chaintable

// NoRecordFound - Custom error to inform that no record was found
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// InvalidCapacity - Custom error to inform that a table can't be created with the requested number of buckets
type InvalidCapacity struct {
	msg string
}

// Error - Used to notify that the capacity is not a positive value
func (E InvalidCapacity) Error() string {
	if E.msg == "" {
		return "capacity must be a positive value higher than 0 (zero)"
	}
	return E.msg
}

// InvalidElement - Custom error to inform that a nil element was passed to a table operation
type InvalidElement struct {
	msg string
}

// Error - Used to notify that an element is nil
func (E InvalidElement) Error() string {
	if E.msg == "" {
		return "element can not be nil"
	}
	return E.msg
}
