// Package models defines the data structures shared across the library:
// selected elements, extracted articles, and configuration.
package models

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Elem is a simplified view of an HTML element, suitable for JSON
// serialization. Text and InnerHTML keep their original whitespace but are
// omitted entirely when they hold nothing else; Attrs is omitted when the
// element carries no attributes.
type Elem struct {
	Tag       string            `json:"tag"`
	Attrs     map[string]string `json:"attrs,omitempty"`
	Text      string            `json:"text,omitempty"`
	InnerHTML string            `json:"inner_html,omitempty"`
}

// ElemFromSelection builds an Elem from the first node of a goquery
// selection.
func ElemFromSelection(s *goquery.Selection) Elem {
	el := Elem{Tag: goquery.NodeName(s)}

	if len(s.Nodes) > 0 && len(s.Nodes[0].Attr) > 0 {
		attrs := make(map[string]string, len(s.Nodes[0].Attr))
		for _, a := range s.Nodes[0].Attr {
			attrs[a.Key] = a.Val
		}
		el.Attrs = attrs
	}

	// Concatenation of all descendant text nodes, untrimmed.
	if text := s.Text(); strings.TrimSpace(text) != "" {
		el.Text = text
	}

	if inner, err := s.Html(); err == nil && strings.TrimSpace(inner) != "" {
		el.InnerHTML = inner
	}

	return el
}
