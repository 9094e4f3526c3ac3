package models

// Article is the readability view of a page plus cheap enrichment signals.
type Article struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Byline   string `json:"byline,omitempty"`
	SiteName string `json:"site_name,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`

	// Content is the cleaned article HTML, Text its plain-text form.
	Content string `json:"content"`
	Text    string `json:"text"`

	WordCount int `json:"word_count"`

	// Language is an ISO-639-1 code (e.g. "en") when detection succeeds.
	Language           string  `json:"language,omitempty"`
	LanguageConfidence float64 `json:"language_confidence,omitempty"`

	TopKeywords []Keyword `json:"top_keywords,omitempty"`
}

// Keyword is a word frequency entry.
type Keyword struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}
