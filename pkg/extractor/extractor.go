// Package extractor pulls the main article out of a page using
// go-readability and enriches it with language detection and keyword
// frequencies.
package extractor

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/dtnitsch/html-helpers/models"
	"github.com/dtnitsch/html-helpers/pkg/analytics"
	readability "github.com/go-shiori/go-readability"
)

const topKeywordLimit = 10

// Extract runs readability over the raw HTML of rawURL and returns the
// enriched article. The HTML is supplied by the caller; no fetching happens
// here.
func Extract(rawURL, htmlContent string) (*models.Article, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(htmlContent), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("readability extraction failed: %w", err)
	}

	result := &models.Article{
		URL:      rawURL,
		Title:    article.Title,
		Byline:   article.Byline,
		SiteName: article.SiteName,
		Excerpt:  article.Excerpt,
		Content:  article.Content,
		Text:     article.TextContent,
	}

	result.WordCount = len(strings.Fields(article.TextContent))

	if code, confidence, ok := DetectLanguage(article.TextContent); ok {
		result.Language = code
		result.LanguageConfidence = confidence
	}

	counts := analytics.WordCounts(article.TextContent)
	result.TopKeywords = analytics.TopKeywords(counts, topKeywordLimit)

	return result, nil
}
