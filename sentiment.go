package opine

import (
	"github.com/jonreiter/govader"
	"gonum.org/v1/gonum/stat"
)

// DefaultInversionFactor approximates negation's effect on sentiment
// polarity. -0.74 is an empirical constant (it is the same scalar VADER
// itself applies to negated valences), not a principled derivation.
const DefaultInversionFactor = -0.74

// NegativeLabel substitutes for the negation tag in rendered output.
const NegativeLabel = "(negative)"

// A Scorer computes compound sentiment scores for comments and tokens.
// It wraps a lexicon/rule analyzer; construct one at startup and reuse it,
// the analyzer is not safe for concurrent use.
type Scorer struct {
	analyzer  *govader.SentimentIntensityAnalyzer
	inversion float64
}

// A ScorerOpt adjusts scorer construction.
type ScorerOpt func(*Scorer)

// WithInversionFactor overrides the negated-token score multiplier.
func WithInversionFactor(factor float64) ScorerOpt {
	return func(s *Scorer) {
		s.inversion = factor
	}
}

// NewScorer creates a Scorer with the embedded VADER lexicon.
func NewScorer(opts ...ScorerOpt) *Scorer {
	s := &Scorer{
		analyzer:  govader.NewSentimentIntensityAnalyzer(),
		inversion: DefaultInversionFactor,
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// Compound returns the compound polarity of text in [-1, 1].
func (s *Scorer) Compound(text string) float64 {
	return s.analyzer.PolarityScores(text).Compound
}

// ScoreComment computes the compound score of one comment. WholeText
// scores the full original text in a single pass; SentenceAverage scores
// each sentence independently and returns the arithmetic mean. A comment
// with zero sentences scores 0.0 in average mode.
func (s *Scorer) ScoreComment(c *Comment, mode ScoreMode) float64 {
	if mode == WholeText {
		return s.Compound(c.Text)
	}

	if len(c.Sentences) == 0 {
		return 0
	}
	scores := make([]float64, len(c.Sentences))
	for i, sent := range c.Sentences {
		scores[i] = s.Compound(sent.Text)
	}
	return stat.Mean(scores, nil)
}

// ScoreComments scores every comment in input order.
func (s *Scorer) ScoreComments(comments []*Comment, mode ScoreMode) []ScoredComment {
	scored := make([]ScoredComment, len(comments))
	for i, c := range comments {
		scored[i] = ScoredComment{Comment: c, Score: s.ScoreComment(c, mode)}
	}
	return scored
}

// ScoreTokens attaches compound scores to aggregated stem tokens and
// returns the retained subset. A token is retained when its stem is in
// the reconciliation map and its final score is nonzero; everything else
// is a filter outcome, not an error. Negation-tagged tokens are scored on
// their resolved lemma and then multiplied by the inversion factor.
func (s *Scorer) ScoreTokens(tokens []ScoredToken, m *StemLemmaMap) []ScoredToken {
	retained := make([]ScoredToken, 0, len(tokens))
	for _, tok := range tokens {
		scored, ok := s.scoreToken(tok, m)
		if ok {
			retained = append(retained, scored)
		}
	}
	return retained
}

// scoreToken is the retention predicate behind ScoreTokens.
func (s *Scorer) scoreToken(tok ScoredToken, m *StemLemmaMap) (ScoredToken, bool) {
	if !m.Contains(tok.Token) {
		return ScoredToken{}, false
	}

	lemma := m.Resolve(tok.Token, "")
	score := s.Compound(lemma)
	if IsNegated(tok.Token) {
		score *= s.inversion
	}
	if score == 0 {
		return ScoredToken{}, false
	}

	tok.Score = score
	return tok, true
}
