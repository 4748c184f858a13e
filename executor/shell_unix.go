//go:build !windows

package executor

// shellCommand wraps a raw command line in a shell invocation.
func shellCommand(command string) []string {
	return []string{"/bin/sh", "-c", command}
}
