package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness conflict on create.
	ErrAlreadyExists = errors.New("already exists")
	// ErrForbidden indicates the principal is not allowed to access the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalid marks rejected input, as opposed to storage or internal faults.
	ErrInvalid = errors.New("invalid input")
)

// Invalid returns a validation error. The returned error matches ErrInvalid
// under errors.Is while keeping msg as its text.
func Invalid(msg string) error {
	return invalidError(msg)
}

type invalidError string

func (e invalidError) Error() string { return string(e) }

func (invalidError) Is(target error) bool { return target == ErrInvalid }
