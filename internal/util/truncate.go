package util

// TruncateForLog shortens s to at most max runes for log previews.
func TruncateForLog(s string, max int) string {
	if max <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
