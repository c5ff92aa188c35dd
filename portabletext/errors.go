package portabletext

import (
	"errors"
	"fmt"
	"strconv"
)

// Errors wrapped by *Error. Test for them with errors.Is.
var (
	ErrMissingType    = errors.New("_type is required")
	ErrInvalidType    = errors.New("_type must be a non-empty string")
	ErrExpectedObject = errors.New("expected an object")
	ErrExpectedArray  = errors.New("expected an array")
	ErrExpectedString = errors.New("expected a string")
	ErrInvalidMarks   = errors.New("marks must be a list of strings")
	ErrInvalidNumber  = errors.New("expected an integer")
	ErrSyntax         = errors.New("malformed JSON")
	ErrTrailingData   = errors.New("unexpected data after the tree")
)

// Error reports a problem found while decoding, and where. Path is empty
// when the input as a whole is at fault.
type Error struct {
	Path string // e.g. "[3].children[1].marks"
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return "portabletext: " + e.Err.Error()
	}
	return fmt.Sprintf("portabletext: %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// location is a JSON path into the tree being decoded
type location string

func (l location) index(i int) location {
	return l + location("["+strconv.Itoa(i)+"]")
}

func (l location) field(name string) location {
	return l + location("."+name)
}

func (l location) fail(err error) error {
	return &Error{Path: string(l), Err: err}
}
