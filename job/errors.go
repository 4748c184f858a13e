package job

import "errors"

// Sentinel errors for invalid construction input. These surface caller
// bugs and are never retried.
var (
	// ErrUnknownOption indicates an unrecognized option key.
	ErrUnknownOption = errors.New("unknown job option")

	// ErrInvalidOption indicates an option value of the wrong type.
	ErrInvalidOption = errors.New("invalid job option value")

	// ErrMissingCommand indicates the options carry no command and no
	// pre-built result.
	ErrMissingCommand = errors.New("job options must include a command")
)
