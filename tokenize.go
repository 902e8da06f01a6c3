package opine

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A WordTokenizer splits a sentence into word and punctuation tokens.
//
// Contractions are split the way downstream negation handling expects:
// "don't" becomes [do, n't], so the "n't" negator is its own token.
type WordTokenizer struct {
	specialRE    *regexp.Regexp
	sanitizer    *strings.Replacer
	contractions []string
	splitCases   []string
	suffixes     []string
	prefixes     []string
	emoticons    map[string]struct{}
}

// A TokenizerOpt adjusts the tokenizer's split tables.
type TokenizerOpt func(*WordTokenizer)

// UsingContractions replaces the contraction suffixes that get split off.
func UsingContractions(x []string) TokenizerOpt {
	return func(t *WordTokenizer) {
		t.contractions = x
	}
}

// UsingSuffixes replaces the punctuation suffixes that get split off.
func UsingSuffixes(x []string) TokenizerOpt {
	return func(t *WordTokenizer) {
		t.suffixes = x
	}
}

// UsingPrefixes replaces the punctuation prefixes that get split off.
func UsingPrefixes(x []string) TokenizerOpt {
	return func(t *WordTokenizer) {
		t.prefixes = x
	}
}

// NewWordTokenizer creates a word tokenizer with the default split tables.
func NewWordTokenizer(opts ...TokenizerOpt) *WordTokenizer {
	t := &WordTokenizer{
		specialRE:    internalRE,
		sanitizer:    sanitizer,
		contractions: contractions,
		suffixes:     suffixes,
		prefixes:     prefixes,
		emoticons:    emoticons,
	}
	for _, applyOpt := range opts {
		applyOpt(t)
	}
	t.splitCases = append(t.splitCases, t.contractions...)
	return t
}

// Tokenize splits text into a slice of word tokens.
func (t *WordTokenizer) Tokenize(text string) []string {
	var tokens []string

	clean, white := t.sanitizer.Replace(text), false
	length := len(clean)

	start, index := 0, 0
	for index <= length {
		uc, size := utf8.DecodeRuneInString(clean[index:])
		if size == 0 {
			break
		} else if index == 0 {
			white = unicode.IsSpace(uc)
		}
		if unicode.IsSpace(uc) != white {
			if start < index {
				tokens = append(tokens, t.doSplit(clean[start:index])...)
			}
			if uc == ' ' {
				start = index + 1
			} else {
				start = index
			}
			white = !white
		}
		index += size
	}

	if start < index {
		tokens = append(tokens, t.doSplit(clean[start:index])...)
	}

	return tokens
}

// doSplit peels prefixes, contractions, and suffixes off a whitespace-delimited
// span until nothing more can be removed.
func (t *WordTokenizer) doSplit(span string) []string {
	var tokens, suffs []string

	last := 0
	for span != "" && utf8.RuneCountInString(span) != last {
		if t.isSpecial(span) {
			// An emoticon or abbreviation survives as a single token.
			tokens = appendToken(tokens, span)
			break
		}
		last = utf8.RuneCountInString(span)
		lower := strings.ToLower(span)
		if hasAnyPrefix(span, t.prefixes) {
			// "(good" -> [(, good]
			tokens = appendToken(tokens, string(span[0]))
			span = span[1:]
		} else if idx := hasAnyIndex(lower, t.splitCases); idx > -1 {
			// "don't" -> [do, n't]; "they'll" -> [they, 'll]
			tokens = appendToken(tokens, span[:idx])
			span = span[idx:]
		} else if hasAnySuffix(span, t.suffixes) {
			// "good!" -> [good, !]
			suffs = append([]string{string(span[len(span)-1])}, suffs...)
			span = span[:len(span)-1]
		} else {
			tokens = appendToken(tokens, span)
			break
		}
	}

	return append(tokens, suffs...)
}

func (t *WordTokenizer) isSpecial(token string) bool {
	_, found := t.emoticons[token]
	return found || t.specialRE.MatchString(token)
}

func appendToken(tokens []string, s string) []string {
	if strings.TrimSpace(s) != "" {
		tokens = append(tokens, s)
	}
	return tokens
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}

func hasAnyIndex(s string, cases []string) int {
	for _, c := range cases {
		idx := strings.Index(s, c)
		if idx >= 0 && len(s) > len(c) {
			return idx
		}
	}
	return -1
}

// internalRE matches abbreviations like "U.S." that must not be split.
var internalRE = regexp.MustCompile(`^(?:[A-Za-z]\.){2,}$|^[A-Z][a-z]{1,2}\.$`)

var sanitizer = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
	"&rsquo;", "'")

var contractions = []string{"'ll", "'s", "'re", "'m", "n't"}
var suffixes = []string{",", ")", `"`, "]", "!", ";", ".", "?", ":", "'"}
var prefixes = []string{"$", "(", `"`, "["}

var emoticons = map[string]struct{}{
	"(-:":    {},
	"(:":     {},
	":(":     {},
	":((":    {},
	":)":     {},
	":))":    {},
	":-(":    {},
	":-)":    {},
	":-/":    {},
	":-P":    {},
	":-p":    {},
	":-|":    {},
	":/":     {},
	":D":     {},
	":P":     {},
	":]":     {},
	":`(":    {},
	":p":     {},
	":|":     {},
	";)":     {},
	";-)":    {},
	"</3":    {},
	"<3":     {},
	"=(":     {},
	"=)":     {},
	"=D":     {},
	"=|":     {},
	"D:":     {},
	"T_T":    {},
	"XD":     {},
	"^_^":    {},
	"o_O":    {},
	"o_o":    {},
	"xD":     {},
	"¯\\_(ツ)_/¯": {},
}
