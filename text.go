package wordfreq

import "strings"

// NormalizeText collapses extracted page text into one phrase per line.
// Each line is trimmed, split on double spaces, and every non-empty trimmed
// chunk is joined with a newline. Normalizing normalized text is a no-op.
func NormalizeText(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, phrase := range strings.Split(line, "  ") {
			if phrase = strings.TrimSpace(phrase); phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, "\n")
}
