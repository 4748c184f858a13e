//go:build !linux && !darwin && !windows

package notify

// platformToolAvailable reports no notification tool on unsupported
// platforms.
func platformToolAvailable() bool {
	return false
}

// platformNotifyCommand returns nil on unsupported platforms.
func platformNotifyCommand(string, string) []string {
	return nil
}
