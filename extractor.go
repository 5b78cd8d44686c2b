package wordfreq

// Extractor extracts visible plain text from HTML pages.
type Extractor interface {
	// Extract removes script and style content from the HTML and returns
	// the remaining visible text normalized with NormalizeText.
	Extract(html string) (string, error)
}
