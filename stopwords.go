package opine

import (
	"strings"

	"github.com/bbalet/stopwords"
)

// A StopSet is the fixed set of tokens removed from the stem and lemma
// views before negation handling. It is built once at startup and shared
// read-only.
//
// The set is a standard English stop-word list plus bare punctuation,
// minus an allow-list of words that matter for sentiment polarity and
// negation scope (negators, modals, quantifiers, and the connectives that
// anchor comparative statements).
type StopSet struct {
	words map[string]struct{}
}

// stopCandidates are the words probed against the stop-word library.
// Only candidates the library also filters end up in the set.
var stopCandidates = []string{
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you",
	"your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "her", "hers", "herself", "it", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "what", "which",
	"who", "whom", "this", "that", "these", "those", "am", "is", "are",
	"was", "were", "be", "been", "being", "have", "has", "had", "having",
	"do", "does", "did", "doing", "a", "an", "the", "and", "but", "if",
	"or", "because", "as", "until", "while", "of", "at", "by", "for",
	"with", "about", "against", "between", "into", "through", "during",
	"before", "after", "above", "below", "to", "from", "up", "down", "in",
	"out", "on", "off", "over", "under", "again", "further", "then",
	"once", "here", "there", "when", "where", "why", "how", "all", "any",
	"both", "each", "few", "more", "most", "other", "some", "such", "no",
	"nor", "not", "only", "own", "same", "so", "than", "too", "very",
	"s", "t", "can", "will", "just", "don", "should", "now",
}

// stopAllowList restores words the stop list would otherwise swallow.
// Negation markers first, then modals/quantifiers, then the determiners
// and temporal connectives that scope negation and comparison.
var stopAllowList = []string{
	"shan't", "wouldn't", "shouldn't", "wasn't", "aren't", "not",
	"mightn't", "no", "doesn't", "hasn't", "won't", "isn't", "out",
	"don't", "didn't", "needn't", "mustn't", "hadn't", "couldn't", "off",
	"nor",
	"very", "to",
	"should", "can", "will",
	"if",
	"which", "who", "this", "those", "that", "these", "whom",
	"each", "most", "few", "all", "some", "more", "any",
	"before", "between", "during", "against", "after",
}

// stopPunctuation is filtered alongside the word list.
var stopPunctuation = []string{",", ".", "!", "?", ";", ":", "'", `"`, "`", "``"}

// NewStopSet builds the stop set. Candidates are verified against the
// stop-word library one word at a time: CleanString filters stop words to
// nothing, so a candidate that comes back altered is confirmed.
func NewStopSet() *StopSet {
	set := &StopSet{words: make(map[string]struct{})}

	for _, word := range stopCandidates {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, "en", false))
		if cleaned == "" || cleaned != word {
			set.words[word] = struct{}{}
		}
	}
	for _, p := range stopPunctuation {
		set.words[p] = struct{}{}
	}
	for _, word := range stopAllowList {
		delete(set.words, word)
	}

	return set
}

// Has reports whether token is in the stop set.
func (s *StopSet) Has(token string) bool {
	_, ok := s.words[token]
	return ok
}

// Len returns the number of tokens in the set.
func (s *StopSet) Len() int {
	return len(s.words)
}

// Filter blanks stop tokens out of the stem and lemma views of c. Tokens
// are replaced with an empty placeholder, never removed, so every
// sentence keeps its token count and the views stay position-aligned.
// The stem and lemma views are checked independently; the word view is
// left alone. Filtering an already-filtered comment is a no-op.
func (s *StopSet) Filter(c *Comment) {
	for i := range c.Sentences {
		toks := c.Sentences[i].Tokens
		for j := range toks {
			if s.Has(toks[j].Stem) {
				toks[j].Stem = ""
			}
			if s.Has(toks[j].Lemma) {
				toks[j].Lemma = ""
			}
		}
	}
}
