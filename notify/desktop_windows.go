//go:build windows

package notify

import (
	"fmt"
	"strings"

	internalexec "github.com/dkonishi/kicker/internal/exec"
)

// platformToolAvailable reports whether PowerShell is usable.
func platformToolAvailable() bool {
	return internalexec.LookPath("powershell")
}

// platformNotifyCommand builds a PowerShell toast notification.
func platformNotifyCommand(title, message string) []string {
	script := fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('kicker').Show($toast)
`, escapeForPowerShell(title), escapeForPowerShell(message))

	return []string{"powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", script}
}

// escapeForPowerShell escapes single quotes for a single-quoted
// PowerShell string literal.
func escapeForPowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
