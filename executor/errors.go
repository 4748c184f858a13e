package executor

import "errors"

// ErrInvalidWork indicates the pipeline input was neither a command
// string nor an options map. This is the caller's bug and is never
// retried.
var ErrInvalidWork = errors.New("work must be a command string or an options map")
