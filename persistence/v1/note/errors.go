package note

import "fmt"

// ParseError reports a stored blob that could not be used. It is recoverable: the
// collection it comes with is empty.
type ParseError struct {
	Key string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse notes stored at %s: %s", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WriteError reports that the storage rejected the write of the collection
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("could not write notes to %s: %s", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
