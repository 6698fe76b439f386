package service

import "errors"

var (
	// ErrEmptySearchTerm is returned by Search for a blank term.
	ErrEmptySearchTerm = errors.New("empty search term")
)
