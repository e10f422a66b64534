package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")

	ErrInvalidSlug = errors.New("invalid project slug")
)
