package opine

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// LexicalCategory is the coarse part of speech used to pick lemmatization
// rules. Words are categorized in isolation, without sentence context, and
// anything unrecognized falls back to Noun.
type LexicalCategory int

const (
	Noun LexicalCategory = iota
	Verb
	Adjective
	Adverb
)

// CategorizeWord guesses the lexical category of a single word from its
// surface form alone. The suffix heuristics mirror how isolated-word POS
// tagging behaves on short informal text: inflectional verb endings and
// "-ly" adverbs are recognizable without context, most everything else is
// treated as a noun.
func CategorizeWord(word string) LexicalCategory {
	lower := strings.ToLower(word)
	switch {
	case strings.HasSuffix(lower, "ly"):
		return Adverb
	case strings.HasSuffix(lower, "ing"),
		strings.HasSuffix(lower, "ed"),
		strings.HasSuffix(lower, "ize"),
		strings.HasSuffix(lower, "ise"),
		strings.HasSuffix(lower, "ify"):
		return Verb
	case strings.HasSuffix(lower, "ful"),
		strings.HasSuffix(lower, "ous"),
		strings.HasSuffix(lower, "ive"),
		strings.HasSuffix(lower, "able"),
		strings.HasSuffix(lower, "ible"),
		strings.HasSuffix(lower, "ish"),
		strings.HasSuffix(lower, "less"),
		strings.HasSuffix(lower, "est"):
		return Adjective
	default:
		return Noun
	}
}

// A Lemmatizer maps words to their dictionary form using per-category
// suffix detachment rules validated against an English word dictionary.
type Lemmatizer struct {
	dict *golem.Lemmatizer
}

// NewLemmatizer creates a lemmatizer backed by the embedded English
// dictionary.
func NewLemmatizer() (*Lemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, err
	}
	return &Lemmatizer{dict: dict}, nil
}

// detachment is one suffix substitution candidate rule.
type detachment struct {
	suffix  string
	replace string
}

var detachments = map[LexicalCategory][]detachment{
	Noun: {
		{"ses", "s"},
		{"ches", "ch"},
		{"shes", "sh"},
		{"xes", "x"},
		{"zes", "z"},
		{"ves", "f"},
		{"ies", "y"},
		{"men", "man"},
		{"s", ""},
	},
	Verb: {
		{"ies", "y"},
		{"ing", "e"},
		{"ing", ""},
		{"ed", "e"},
		{"ed", ""},
		{"es", "e"},
		{"es", ""},
		{"s", ""},
	},
	Adjective: {
		{"est", ""},
		{"est", "e"},
		{"er", ""},
		{"er", "e"},
	},
	Adverb: nil,
}

// Irregular forms the detachment rules cannot reach. Consulted before
// categorization, since an irregular surface form rarely carries the
// suffix that would reveal its category.
var lemmaExceptions = map[string]string{
	"am": "be", "are": "be", "been": "be", "is": "be", "was": "be", "were": "be",
	"best": "good", "better": "good",
	"children": "child",
	"did":      "do", "done": "do",
	"feet": "foot",
	"felt": "feel",
	"gave": "give",
	"gone": "go", "went": "go",
	"got": "get",
	"had": "have", "has": "have",
	"made": "make",
	"men":  "man",
	"mice": "mouse",
	"people": "person",
	"ran":    "run",
	"said":   "say",
	"saw":    "see",
	"teeth":  "tooth",
	"took":   "take",
	"worse":  "bad", "worst": "bad",
}

// Lemmatize returns the lower-cased lemma of word for its guessed lexical
// category. Resolution order: irregular exceptions, then suffix detachment
// candidates validated against the dictionary (undoubling trailing
// consonants where detachment exposes one), then the word itself if it is
// a dictionary word, then the dictionary's own best lemma. It never fails;
// an unknown word lemmatizes to itself.
func (l *Lemmatizer) Lemmatize(word string) string {
	lower := strings.ToLower(word)

	if lemma, ok := lemmaExceptions[lower]; ok {
		return lemma
	}

	cat := CategorizeWord(lower)

	for _, d := range detachments[cat] {
		if !strings.HasSuffix(lower, d.suffix) || len(lower) <= len(d.suffix) {
			continue
		}
		cand := lower[:len(lower)-len(d.suffix)] + d.replace
		if l.dict.InDict(cand) {
			return cand
		}
		// running -> runn -> run, stopped -> stopp -> stop
		if undoubled, ok := undouble(cand); ok && l.dict.InDict(undoubled) {
			return undoubled
		}
	}

	if l.dict.InDict(lower) {
		return lower
	}
	return l.dict.LemmaLower(lower)
}

// undouble strips one of a doubled trailing consonant pair.
func undouble(s string) (string, bool) {
	if len(s) < 3 {
		return "", false
	}
	last := s[len(s)-1]
	if s[len(s)-2] != last {
		return "", false
	}
	switch last {
	case 'a', 'e', 'i', 'o', 'u':
		return "", false
	}
	return s[:len(s)-1], true
}
