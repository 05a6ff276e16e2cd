package utils

// Truncate returns s truncated to maxLen runes, with "..." appended if
// truncated. Counting runes, not bytes, keeps CJK text from being cut
// mid-character. If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
