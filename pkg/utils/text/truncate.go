package text

// Ellipsis is appended to truncated summaries
const Ellipsis = "..."

// Truncate cuts s to at most limit characters (runes) and appends Ellipsis
// when anything was removed.
func Truncate(s string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + Ellipsis
}
