package mdp

import (
	"strings"

	"pkt.systems/mdp/internal/ansitext"
)

func truncateWithEllipsis(text string, limit int) string {
	if ansitext.VisibleWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	if limit == 1 {
		return ansitext.Ellipsis
	}
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + ansitext.Ellipsis
}

// fitURL shortens a URL for display: the scheme is dropped first, and
// only then is the remainder ellipsized.
func fitURL(url string, limit int) string {
	if ansitext.VisibleWidth(url) <= limit {
		return url
	}
	if idx := strings.Index(url, "://"); idx != -1 {
		trimmed := url[idx+3:]
		if ansitext.VisibleWidth(trimmed) <= limit {
			return trimmed
		}
	}
	return truncateWithEllipsis(url, limit)
}
