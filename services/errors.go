package services

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrImageProcessing    = errors.New("image processing failed")
)

// ImageProcessingError reports a failed image read, write or delete.
type ImageProcessingError struct {
	Op   string
	Name string
	Err  error
}

func (e *ImageProcessingError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("image %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("image %s %q: %v", e.Op, e.Name, e.Err)
}

func (e *ImageProcessingError) Unwrap() error { return e.Err }

func (e *ImageProcessingError) Is(target error) bool {
	return target == ErrImageProcessing
}

func imageError(op, name string, err error) error {
	return &ImageProcessingError{Op: op, Name: name, Err: err}
}
