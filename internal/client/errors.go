package client

import "errors"

var (
	// ErrMissingCommand is returned when no command was given.
	ErrMissingCommand = errors.New("missing command")
	// ErrUnknownCommand is returned for an unrecognised command name.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a command lacks its operand.
	ErrMissingArgument = errors.New("missing argument")
	// ErrStoreUnavailable is returned by commands that need the local
	// catalog index when the app was built without one.
	ErrStoreUnavailable = errors.New("local catalog index is not available")
)
