// ABOUTME: Shared text helpers for log truncation and display
// ABOUTME: Rune-aware so multi-byte input is never split mid-character
package util

// Truncate shortens a string to maxLen runes, adding "..." if truncated
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
