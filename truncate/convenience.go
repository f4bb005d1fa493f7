package truncate

import (
	"strings"
	"unicode/utf8"
)

// FitRecord fits record into budget tokens under model's tokenizer, using
// a fresh accountant and the default marker. See RecordTruncator.Fit.
func FitRecord(record map[string]any, budget int, groups [][]string, model string) (*Record, error) {
	return NewRecordTruncator(nil).Fit(record, budget, groups, model)
}

// ToTokens truncates text to fit within the token limit under model's
// tokenizer. Uses end truncation.
func ToTokens(text string, maxTokens int, model string) string {
	result, _ := NewFromEnd().WithModel(model).Truncate(text, maxTokens)
	return result
}

// ToLines truncates text to a maximum number of lines.
func ToLines(text string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}

	lines := strings.Split(text, "\n")
	if len(lines) <= maxLines {
		return text
	}

	return strings.Join(lines[:maxLines], "\n") + "\n..."
}

// ToLength truncates text to a maximum character length.
// Properly handles UTF-8 by counting runes, not bytes.
func ToLength(text string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runeCount := utf8.RuneCountInString(text)
	if runeCount <= maxLen {
		return text
	}

	runes := []rune(text)
	if maxLen < 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
