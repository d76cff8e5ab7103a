package logparse

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/tinytelemetry/warnsum/internal/model"
)

// Stopwords is the fixed set of filler words never reported as keywords.
var Stopwords = map[string]struct{}{
	"doing": {},
	"dont":  {},
	"just":  {},
	"like":  {},
	"some":  {},
	"thing": {},
	"this":  {},
}

// apostrophes are removed before splitting so "don't" becomes "dont".
var apostrophes = strings.NewReplacer("'", "", "’", "", "`", "")

// KeywordExtractor turns warning messages into normalized keywords.
type KeywordExtractor struct {
	minLength int
}

// NewKeywordExtractor creates an extractor keeping keywords of at least
// minLength runes. A non-positive minLength selects the default.
func NewKeywordExtractor(minLength int) *KeywordExtractor {
	if minLength <= 0 {
		minLength = model.DefaultMinKeywordLength
	}
	return &KeywordExtractor{minLength: minLength}
}

// MinLength returns the shortest keyword the extractor keeps.
func (e *KeywordExtractor) MinLength() int { return e.minLength }

// Extract returns the keywords of message in order of appearance.
// Every occurrence is returned, so a word repeated in one message appears twice.
func (e *KeywordExtractor) Extract(message string) []string {
	lowered := apostrophes.Replace(strings.ToLower(message))
	fields := strings.FieldsFunc(lowered, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})

	var keywords []string
	for _, f := range fields {
		if e.keep(f) {
			keywords = append(keywords, f)
		}
	}
	return keywords
}

func (e *KeywordExtractor) keep(word string) bool {
	if utf8.RuneCountInString(word) < e.minLength {
		return false
	}
	if isNumeric(word) {
		return false
	}
	_, stop := Stopwords[word]
	return !stop
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
