// Package analytics computes word frequency signals over extracted text.
package analytics

import (
	"sort"
	"strings"

	"github.com/dtnitsch/html-helpers/models"
)

// stopwords are excluded from frequency analysis. The list can be extended
// as needed.
var stopwords = map[string]struct{}{
	"about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "and": {}, "any": {}, "are": {}, "aren't": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "can": {}, "can't": {},
	"cannot": {}, "could": {}, "did": {}, "didn't": {}, "does": {},
	"doesn't": {}, "doing": {}, "don't": {}, "down": {}, "during": {},
	"each": {}, "for": {}, "from": {}, "further": {}, "had": {},
	"has": {}, "have": {}, "having": {}, "her": {}, "here": {},
	"hers": {}, "him": {}, "his": {}, "how": {}, "into": {},
	"it's": {}, "its": {}, "itself": {}, "just": {}, "more": {},
	"most": {}, "not": {}, "now": {}, "off": {}, "once": {},
	"only": {}, "other": {}, "our": {}, "ours": {}, "out": {},
	"over": {}, "own": {}, "same": {}, "she": {}, "should": {},
	"some": {}, "such": {}, "than": {}, "that": {}, "the": {},
	"their": {}, "theirs": {}, "them": {}, "then": {}, "there": {},
	"these": {}, "they": {}, "this": {}, "those": {}, "through": {},
	"too": {}, "under": {}, "until": {}, "very": {}, "was": {},
	"wasn't": {}, "were": {}, "what": {}, "when": {}, "where": {},
	"which": {}, "while": {}, "who": {}, "whom": {}, "why": {},
	"will": {}, "with": {}, "would": {}, "you": {}, "your": {},
	"yours": {},
}

const minWordLen = 3

// WordCounts tokenizes text and counts words, skipping stopwords and words
// shorter than three characters. Words are lowercased and stripped of
// surrounding punctuation.
func WordCounts(text string) map[string]int {
	counts := make(map[string]int)
	for _, raw := range strings.Fields(text) {
		word := strings.ToLower(strings.Trim(raw, ".,;:!?\"'()[]{}<>"))
		if len(word) < minWordLen {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		counts[word]++
	}
	return counts
}

// Merge combines per-document counts into a single map.
func Merge(maps []map[string]int) map[string]int {
	merged := make(map[string]int)
	for _, m := range maps {
		for word, count := range m {
			merged[word] += count
		}
	}
	return merged
}

// TopKeywords returns the n most frequent words, highest count first,
// ties broken alphabetically so the result is deterministic.
func TopKeywords(counts map[string]int, n int) []models.Keyword {
	keywords := make([]models.Keyword, 0, len(counts))
	for word, count := range counts {
		keywords = append(keywords, models.Keyword{Word: word, Count: count})
	}

	sort.Slice(keywords, func(i, j int) bool {
		if keywords[i].Count != keywords[j].Count {
			return keywords[i].Count > keywords[j].Count
		}
		return keywords[i].Word < keywords[j].Word
	})

	if n > 0 && len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}
