package job

import (
	"fmt"

	"github.com/dkonishi/kicker/config"
)

// Option keys accepted by FromOptions.
const (
	OptCommand      = "command"
	OptExitCode     = "exit_code"
	OptOutput       = "output"
	OptPrintBefore  = "print_before"
	OptPrintAfter   = "print_after"
	OptNotifyBefore = "notify_before"
	OptNotifyAfter  = "notify_after"
)

// FromOptions builds a Job from a mapping of field overrides. Unknown
// keys fail with ErrUnknownOption, wrongly typed values with
// ErrInvalidOption. The mapping must include "command" unless the caller
// supplies a pre-built "output" or "exit_code" for dry-run testing.
func FromOptions(cfg *config.Config, opts map[string]any) (*Job, error) {
	j := &Job{cfg: cfg}

	var hasCommand, hasResult bool

	for key, value := range opts {
		switch key {
		case OptCommand:
			s, err := stringOption(key, value)
			if err != nil {
				return nil, err
			}
			j.Command = s
			hasCommand = true

		case OptExitCode:
			n, ok := value.(int)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be an int, got %T", ErrInvalidOption, key, value)
			}
			j.ExitCode = n
			hasResult = true

		case OptOutput:
			s, err := stringOption(key, value)
			if err != nil {
				return nil, err
			}
			j.Output = s
			hasResult = true

		case OptPrintBefore:
			s, err := optionalStringOption(key, value)
			if err != nil {
				return nil, err
			}
			j.printBefore.Set(s)

		case OptPrintAfter:
			s, err := optionalStringOption(key, value)
			if err != nil {
				return nil, err
			}
			j.printAfter.Set(s)

		case OptNotifyBefore:
			n, err := notificationOption(key, value)
			if err != nil {
				return nil, err
			}
			j.notifyBefore.Set(n)

		case OptNotifyAfter:
			n, err := notificationOption(key, value)
			if err != nil {
				return nil, err
			}
			j.notifyAfter.Set(n)

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}

	if !hasCommand && !hasResult {
		return nil, ErrMissingCommand
	}

	return j, nil
}

func stringOption(key string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string, got %T", ErrInvalidOption, key, value)
	}
	return s, nil
}

// optionalStringOption accepts a string or nil. Nil is an explicit
// assignment of "absent" and still pins the field.
func optionalStringOption(key string, value any) (string, error) {
	if value == nil {
		return "", nil
	}
	return stringOption(key, value)
}

// notificationOption accepts a Notification, *Notification or nil.
func notificationOption(key string, value any) (*Notification, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case Notification:
		return &v, nil
	case *Notification:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a Notification, got %T", ErrInvalidOption, key, value)
	}
}
