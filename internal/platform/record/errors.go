package record

import "errors"

var (
	// ErrNotFound reports an identifier that does not resolve in the
	// target store. The store's state is left untouched.
	ErrNotFound = errors.New("not found")

	// ErrCapacityExceeded reports a store at its configured maximum
	// record count. The record is not added.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidReference reports a foreign identifier that does not
	// resolve at the time of a cross-entity operation.
	ErrInvalidReference = errors.New("invalid reference")

	// ErrMalformedRecord reports a persisted line that cannot be decoded.
	// Stores never surface it to callers; the line is dropped during load.
	ErrMalformedRecord = errors.New("malformed record")
)
