package selector

import (
	"testing"

	"github.com/dtnitsch/html-helpers/models"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{name: "empty spec", spec: "", wantErr: false},
		{name: "types only", spec: "type:p|h1", wantErr: false},
		{name: "length only", spec: "len:>=10", wantErr: false},
		{name: "combined", spec: "type:p,len:>=5", wantErr: false},
		{name: "missing colon", spec: "type", wantErr: true},
		{name: "unknown key", spec: "conf:>=0.5", wantErr: true},
		{name: "bad operator", spec: "len:<=10", wantErr: true},
		{name: "bad number", spec: "len:>=abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFilter(tt.spec)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFilter(%q) error = %v, wantErr %v", tt.spec, err, tt.wantErr)
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	els := []models.Elem{
		{Tag: "h1", Text: "Title"},
		{Tag: "p", Text: "A long enough paragraph."},
		{Tag: "p", Text: "ok"},
		{Tag: "div", Text: "Div content"},
	}

	f, err := ParseFilter("type:p|h1,len:>=5")
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}

	got := f.Apply(els)
	if len(got) != 2 {
		t.Fatalf("Apply() returned %d elems, want 2", len(got))
	}
	if got[0].Tag != "h1" || got[1].Tag != "p" {
		t.Errorf("Apply() tags = %q, %q", got[0].Tag, got[1].Tag)
	}
}

func TestFilterApplyNoop(t *testing.T) {
	els := []models.Elem{{Tag: "p", Text: "x"}}

	f, err := ParseFilter("")
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}

	if got := f.Apply(els); len(got) != 1 {
		t.Errorf("no-op filter should keep all elems, got %d", len(got))
	}

	var nilFilter *Filter
	if got := nilFilter.Apply(els); len(got) != 1 {
		t.Errorf("nil filter should keep all elems, got %d", len(got))
	}
}
