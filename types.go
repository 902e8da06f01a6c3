package opine

// A TokenView holds the three aligned forms of a single word token. Keeping
// them in one record makes the stem/lemma alignment a structural property
// rather than an index-discipline one: the views cannot drift apart.
type TokenView struct {
	Word  string // The token as produced by word tokenization.
	Stem  string // The stemmed form; empty after stop-word filtering, NEG_-tagged after compaction.
	Lemma string // The lower-cased lemma; empty after stop-word filtering.
}

// A SentenceTokens represents one segmented sentence and its token views.
type SentenceTokens struct {
	Text   string // The sentence's original text.
	Tokens []TokenView
}

// A Comment represents one ingested comment with its normalized token views.
//
// The original text and timestamp are never modified. The token views are
// mutated in place by the stop-word filter (stems and lemmas) and the
// negation compactor (stems only); both stages preserve the token count of
// every sentence.
type Comment struct {
	Text      string // The comment's original text.
	Timestamp string // Opaque submit time; carried through, never parsed.
	Sentences []SentenceTokens
}

// StemTokens returns a copy of the stem view of sentence i.
func (c *Comment) StemTokens(i int) []string {
	stems := make([]string, len(c.Sentences[i].Tokens))
	for j, tok := range c.Sentences[i].Tokens {
		stems[j] = tok.Stem
	}
	return stems
}

// A ScoredComment pairs a comment with its compound sentiment score.
type ScoredComment struct {
	Comment *Comment
	Score   float64 // Compound score in [-1, 1].
}

// A ScoredToken represents one stem token with its corpus-wide occurrence
// count and, after scoring, its compound sentiment score.
type ScoredToken struct {
	Token string  // The stem token, possibly NEG_-tagged.
	Count int     // Occurrences across the whole corpus.
	Score float64 // Compound score in [-1, 1]; 0 until scored.
}

// A Record is one raw input item as read from the ingest stream.
type Record struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

// ScoreMode selects how a comment's compound score is computed.
type ScoreMode int

const (
	// WholeText scores the full original text in one pass.
	WholeText ScoreMode = iota
	// SentenceAverage scores each sentence independently and averages.
	SentenceAverage
)
