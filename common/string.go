package common

import "strings"

// WrapString wraps s at word boundaries so no line exceeds width runes.
// Words longer than width are split hard. Operates on runes so multibyte
// text is never cut mid-character.
func WrapString(s string, width int) string {
	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		runes := []rune(paragraph)
		for len(runes) > width {
			splitAt := width
			// Try to split at the last space before the specified width
			for i := width; i > 0; i-- {
				if runes[i] == ' ' {
					splitAt = i
					break
				}
			}
			lines = append(lines, string(runes[:splitAt]))
			runes = runes[splitAt:]
			// Remove leading spaces
			for len(runes) > 0 && runes[0] == ' ' {
				runes = runes[1:]
			}
		}
		lines = append(lines, string(runes))
	}
	return strings.Join(lines, "\n")
}
