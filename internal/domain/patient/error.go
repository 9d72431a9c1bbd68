package patient

import "errors"

var (
	ErrNotFound     = errors.New("patient not found")
	ErrUnauthorized = errors.New("role not permitted to perform this operation")
	ErrInvalidInput = errors.New("invalid input")
)
