// Package selector runs CSS selectors against HTML content and returns the
// matches as serializable Elem values.
package selector

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/dtnitsch/html-helpers/models"
)

// ParseError reports a CSS selector that failed to compile.
type ParseError struct {
	Selector string
	Cause    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("selector %q is invalid: %s", e.Selector, e.Cause)
}

func (e *ParseError) Unwrap() error { return e.Cause }

// Select returns the elements matching any of the given CSS selectors, in
// document order. Selectors are trimmed and blank ones skipped; the rest are
// combined with a comma, so the match is an OR across all of them. An input
// with no usable selectors yields an empty result, not an error.
func Select(htmlContent string, selectors []string) ([]models.Elem, error) {
	var parts []string
	for _, s := range selectors {
		s = strings.TrimSpace(s)
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return []models.Elem{}, nil
	}
	combined := strings.Join(parts, ",")

	matcher, err := cascadia.Compile(combined)
	if err != nil {
		return nil, &ParseError{Selector: combined, Cause: err}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	els := []models.Elem{}
	doc.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
		els = append(els, models.ElemFromSelection(s))
	})

	return els, nil
}
