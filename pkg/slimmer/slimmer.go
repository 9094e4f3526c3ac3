// Package slimmer strips non-content elements from HTML documents,
// producing a much smaller document that keeps the visible content and
// the handful of head tags worth keeping.
package slimmer

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Default policies. Overridable per call through Options.
var (
	// Tags removed outright, regardless of content, outside <head>.
	defaultTagsToRemove = []string{"script", "link", "style", "svg", "base"}

	// Tags dropped when they end up effectively empty (only whitespace
	// text and comments) after their children were processed.
	defaultRemovableEmptyTags = []string{
		"div", "span", "p", "i", "b", "em", "strong",
		"section", "article", "header", "footer", "nav", "aside",
	}

	// Keywords matched against the property attribute of <meta> tags to
	// decide whether a meta inside <head> is kept.
	defaultMetaPropertyKeywords = []string{"title", "url", "image", "description"}

	// Attributes kept on <meta> tags inside <head>.
	defaultAllowedMetaAttrs = []string{"property", "content"}

	// Attributes kept on elements outside <head>.
	defaultAllowedBodyAttrs = []string{"class", "aria-label", "href", "title", "id"}
)

// Options control which tags and attributes survive a slim pass.
// A nil or empty slice falls back to the package default for that field.
type Options struct {
	TagsToRemove         []string
	RemovableEmptyTags   []string
	MetaPropertyKeywords []string
	AllowedMetaAttrs     []string
	AllowedBodyAttrs     []string
}

// policy is the resolved, set-based form of Options.
type policy struct {
	remove         map[string]struct{}
	removableEmpty map[string]struct{}
	metaKeywords   []string
	metaAttrs      map[string]struct{}
	bodyAttrs      map[string]struct{}
}

func (o Options) policy() *policy {
	return &policy{
		remove:         toSet(orDefault(o.TagsToRemove, defaultTagsToRemove)),
		removableEmpty: toSet(orDefault(o.RemovableEmptyTags, defaultRemovableEmptyTags)),
		metaKeywords:   orDefault(o.MetaPropertyKeywords, defaultMetaPropertyKeywords),
		metaAttrs:      toSet(orDefault(o.AllowedMetaAttrs, defaultAllowedMetaAttrs)),
		bodyAttrs:      toSet(orDefault(o.AllowedBodyAttrs, defaultAllowedBodyAttrs)),
	}
}

func orDefault(vals, fallback []string) []string {
	if len(vals) == 0 {
		return fallback
	}
	return vals
}

func toSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

// Slim strips non-content elements from the given HTML and returns the
// cleaned document as a string.
//
// It removes script/link/style/svg/base tags, HTML comments, whitespace-only
// text nodes, and wrapper tags (div, span, p, ...) that become effectively
// empty after processing. Inside <head> only <title> and <meta> tags whose
// property matches one of the meta keywords survive; an emptied <head> is
// dropped entirely. Attributes are filtered down to small allowlists.
func Slim(htmlContent string) (string, error) {
	return SlimWithOptions(htmlContent, Options{})
}

// SlimWithOptions is Slim with per-call tag and attribute policies.
func SlimWithOptions(htmlContent string, opts Options) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	processNode(doc, false, opts.policy())

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	return removeEmptyLines(buf.String()), nil
}

// DecodeEntities decodes HTML entities (e.g. `&lt;` becomes `<`).
func DecodeEntities(content string) string {
	return html.UnescapeString(content)
}

// EncodeEntities escapes special characters (e.g. `<` becomes `&lt;`).
func EncodeEntities(content string) string {
	return html.EscapeString(content)
}

// removeEmptyLines drops lines that hold nothing but whitespace.
func removeEmptyLines(content string) string {
	var kept []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// processNode prunes the subtree rooted at n and reports whether n itself
// should be kept. inHead is true when n lives inside the <head> element
// (not for the <head> element itself).
func processNode(n *html.Node, inHead bool, p *policy) bool {
	switch n.Type {
	case html.ElementNode:
		tag := n.Data
		isHead := tag == "head"
		childInHead := inHead || isHead

		if inHead {
			// Only <title> and selected <meta> tags survive inside <head>.
			switch tag {
			case "title":
			case "meta":
				if !keepMeta(n, p) {
					return false
				}
			default:
				return false
			}
		} else if _, drop := p.remove[tag]; drop {
			return false
		}

		pruneChildren(n, childInHead, p)
		filterAttributes(n, childInHead, p)

		if isHead && n.FirstChild == nil {
			return false
		}
		if !childInHead {
			if _, ok := p.removableEmpty[tag]; ok && effectivelyEmpty(n) {
				return false
			}
		}
		return true

	case html.TextNode:
		return strings.TrimSpace(n.Data) != ""

	case html.DocumentNode:
		pruneChildren(n, false, p)
		return true

	case html.DoctypeNode:
		return true

	default:
		// Comments and anything else.
		return false
	}
}

func pruneChildren(n *html.Node, inHead bool, p *policy) {
	child := n.FirstChild
	for child != nil {
		next := child.NextSibling
		if !processNode(child, inHead, p) {
			n.RemoveChild(child)
		}
		child = next
	}
}

// keepMeta reports whether a <meta> tag has a property attribute matching
// one of the configured keywords.
func keepMeta(n *html.Node, p *policy) bool {
	for _, attr := range n.Attr {
		if attr.Key != "property" {
			continue
		}
		val := strings.ToLower(attr.Val)
		for _, kw := range p.metaKeywords {
			if strings.Contains(val, kw) {
				return true
			}
		}
	}
	return false
}

// filterAttributes applies the attribute allowlist for the context the
// element lives in.
func filterAttributes(n *html.Node, inHead bool, p *policy) {
	if inHead {
		if n.Data == "meta" {
			n.Attr = retainAttrs(n.Attr, p.metaAttrs)
		} else {
			// <title>, the <head> element itself, and anything else
			// kept in head context carries no attributes.
			n.Attr = nil
		}
		return
	}
	n.Attr = retainAttrs(n.Attr, p.bodyAttrs)
}

func retainAttrs(attrs []html.Attribute, allowed map[string]struct{}) []html.Attribute {
	kept := attrs[:0]
	for _, attr := range attrs {
		if _, ok := allowed[attr.Key]; ok {
			kept = append(kept, attr)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

// effectivelyEmpty reports whether n holds only whitespace text nodes and
// comments.
func effectivelyEmpty(n *html.Node) bool {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		switch child.Type {
		case html.TextNode:
			if strings.TrimSpace(child.Data) != "" {
				return false
			}
		case html.CommentNode:
			// Treated as empty; comments are removed elsewhere.
		default:
			return false
		}
	}
	return true
}
