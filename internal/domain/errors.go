package domain

import "errors"

var (
	// ErrMissingInput is returned when a required input file does not exist
	ErrMissingInput = errors.New("input file not found")
	// ErrInvalidInput is returned when an input file is structurally unusable
	ErrInvalidInput = errors.New("invalid input")
)
