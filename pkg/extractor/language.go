package extractor

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// detectionLanguages is the fixed set considered during detection. Keeping
// the set small bounds the language models lingua loads into memory.
var detectionLanguages = []lingua.Language{
	lingua.English,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
	lingua.Dutch,
	lingua.Russian,
	lingua.Japanese,
	lingua.Chinese,
}

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

func languageDetector() lingua.LanguageDetector {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(detectionLanguages...).
			Build()
	})
	return detector
}

// DetectLanguage returns the ISO-639-1 code and confidence for the dominant
// language of text. ok is false when the text gives no usable signal.
func DetectLanguage(text string) (code string, confidence float64, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", 0, false
	}

	d := languageDetector()
	lang, exists := d.DetectLanguageOf(text)
	if !exists {
		return "", 0, false
	}

	confidence = d.ComputeLanguageConfidence(text, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), confidence, true
}
