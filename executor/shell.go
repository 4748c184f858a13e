package executor

import (
	shellwords "github.com/mattn/go-shellwords"
)

// splitCommand splits a command line into argv tokens using shell-word
// rules, so quoted arguments with spaces stay intact. Command lines the
// splitter cannot handle (unbalanced quotes) fall back to a raw shell
// invocation with output still merged.
func splitCommand(command string) []string {
	argv, err := shellwords.Parse(command)
	if err != nil || len(argv) == 0 {
		return shellCommand(command)
	}
	return argv
}
