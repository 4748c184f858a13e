//go:build linux

package notify

import (
	"os"

	internalexec "github.com/dkonishi/kicker/internal/exec"
)

// platformToolAvailable reports whether notify-send is usable: the
// binary must resolve and a display environment must be present.
func platformToolAvailable() bool {
	return internalexec.LookPath("notify-send") && hasDisplay()
}

// platformNotifyCommand builds the notify-send invocation.
func platformNotifyCommand(title, message string) []string {
	return []string{"notify-send", title, message}
}

// hasDisplay checks for an X11 or Wayland display environment.
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
