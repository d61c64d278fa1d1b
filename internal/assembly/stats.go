package assembly

import (
	"strings"
	"unicode/utf8"

	"github.com/artiklo/legato/internal/model"
)

// Preview returns the first maxLen bytes of a document, truncated at a word
// boundary with an ellipsis. Documents at or under the limit come back
// unchanged.
func Preview(text string, maxLen int) string {
	if maxLen <= 0 || len(text) <= maxLen {
		return text
	}
	// Back off to a rune boundary so multi-byte text never splits mid-rune
	for maxLen > 0 && !utf8.RuneStart(text[maxLen]) {
		maxLen--
	}
	cut := text[:maxLen]
	if idx := strings.LastIndexAny(cut, " \t\n"); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut) + "..."
}

// Stats computes size measures over a finished document
func Stats(text string) model.DocumentStats {
	stats := model.DocumentStats{
		Characters: len(text),
		Words:      len(strings.Fields(text)),
	}
	if text != "" {
		stats.Lines = strings.Count(text, "\n") + 1
	}
	for _, block := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(block) != "" {
			stats.Paragraphs++
		}
	}
	return stats
}
