package cli

import "fmt"

// ExitError carries a process exit code from a command that completed
// with a non-zero status. The main package translates it into os.Exit
// without printing an extra error message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
