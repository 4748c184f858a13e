//go:build darwin

package notify

import (
	"fmt"

	internalexec "github.com/dkonishi/kicker/internal/exec"
)

// platformToolAvailable reports whether osascript is usable.
func platformToolAvailable() bool {
	return internalexec.LookPath("osascript")
}

// platformNotifyCommand builds the osascript invocation.
func platformNotifyCommand(title, message string) []string {
	script := fmt.Sprintf(`display notification %q with title %q`, message, title)
	return []string{"osascript", "-e", script}
}
