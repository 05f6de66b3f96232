package repository

import "errors"

var (
	ErrFailedToFetch  = errors.New("failed to fetch recipe data")
	ErrInvalidFormat  = errors.New("recipe data is not a JSON array of objects")
	ErrUnexpectedCode = errors.New("unexpected status code")
)
