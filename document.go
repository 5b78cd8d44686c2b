package wordfreq

// Document represents a fetched HTML page.
// It lives for a single pipeline run and is discarded after extraction.
type Document struct {
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"-"`
}

// Text returns the body as a string. Fetchers guarantee the body is UTF-8.
func (d *Document) Text() string {
	return string(d.Body)
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	return nil
}
