package selector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/html-helpers/models"
)

// Filter narrows a Select result after the fact.
type Filter struct {
	MinTextLen int
	Tags       map[string]struct{}
}

// ParseFilter parses a filter spec like "type:p|h1,len:>=10".
// An empty spec returns a no-op filter.
func ParseFilter(spec string) (*Filter, error) {
	if spec == "" {
		return &Filter{}, nil
	}

	f := &Filter{Tags: make(map[string]struct{})}

	for _, part := range strings.Split(spec, ",") {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid filter part: %s", part)
		}
		key := strings.TrimSpace(kv[0])
		value := strings.TrimSpace(kv[1])

		switch key {
		case "len":
			if !strings.HasPrefix(value, ">=") {
				return nil, fmt.Errorf("unsupported length operator in: %s", value)
			}
			n, err := strconv.Atoi(strings.TrimSpace(value[2:]))
			if err != nil {
				return nil, fmt.Errorf("invalid length value: %s", value)
			}
			f.MinTextLen = n
		case "type":
			for _, t := range strings.Split(value, "|") {
				f.Tags[strings.TrimSpace(t)] = struct{}{}
			}
		default:
			return nil, fmt.Errorf("unknown filter key: %s", key)
		}
	}

	return f, nil
}

// Apply returns the elems passing the filter. Length is measured on the
// trimmed text content.
func (f *Filter) Apply(els []models.Elem) []models.Elem {
	if f == nil || (f.MinTextLen == 0 && len(f.Tags) == 0) {
		return els
	}

	filtered := make([]models.Elem, 0, len(els))
	for _, el := range els {
		if len(strings.TrimSpace(el.Text)) < f.MinTextLen {
			continue
		}
		if len(f.Tags) > 0 {
			if _, ok := f.Tags[el.Tag]; !ok {
				continue
			}
		}
		filtered = append(filtered, el)
	}
	return filtered
}
