package opine

import "strings"

// NegPrefix tags a stem token rewritten by negation compaction.
const NegPrefix = "NEG_"

// DefaultNegationWindow is how many tokens after a negator get tagged.
const DefaultNegationWindow = 3

// negators are the markers that arm the negation window. Contractions
// appear both whole and as the split-off "n't" token the word tokenizer
// produces.
var negators = map[string]struct{}{
	"won't": {}, "n't": {}, "out": {}, "without": {}, "no": {},
	"don't": {}, "mightn't": {}, "isn't": {}, "doesn't": {},
	"shouldn't": {}, "can't": {}, "wouldn't": {}, "hadn't": {},
	"nor": {}, "off": {}, "cannot": {}, "needn't": {}, "never": {},
	"shan't": {}, "didn't": {}, "couldn't": {}, "mustn't": {},
	"not": {}, "aren't": {}, "hasn't": {}, "wasn't": {},
}

// A NegationCompactor rewrites the stem tokens that follow a negator into
// tagged variants so the negated scope survives aggregation as distinct
// tokens.
type NegationCompactor struct {
	window int
}

// NewNegationCompactor creates a compactor with the given window width.
// Width must be positive; the zero value of the argument is replaced with
// the default.
func NewNegationCompactor(window int) *NegationCompactor {
	if window <= 0 {
		window = DefaultNegationWindow
	}
	return &NegationCompactor{window: window}
}

// Compact rewrites the stem view of every sentence in c. The word and
// lemma views are untouched and every sentence keeps its token count;
// only stem content changes.
func (nc *NegationCompactor) Compact(c *Comment) {
	for i := range c.Sentences {
		nc.compactSentence(c.Sentences[i].Tokens)
	}
}

// compactSentence scans tokens left to right. A negator re-arms the full
// window and passes through unchanged; while the window is open every
// non-negator token is lower-cased and tagged. Consecutive negators
// re-trigger the window, they do not stack.
func (nc *NegationCompactor) compactSentence(toks []TokenView) {
	count := 0
	for j := range toks {
		stem := strings.ToLower(toks[j].Stem)
		if _, ok := negators[stem]; ok {
			count = nc.window
			toks[j].Stem = stem
			continue
		}
		if count > 0 {
			toks[j].Stem = NegPrefix + stem
			count--
		} else {
			toks[j].Stem = stem
		}
	}
}

// IsNegated reports whether a stem token carries the negation tag.
func IsNegated(stem string) bool {
	return strings.HasPrefix(stem, NegPrefix)
}
