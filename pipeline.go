package opine

import (
	"fmt"
	"runtime"
	"sync"
)

// A PipelineOpt represents a setting that changes how the pipeline runs.
//
// For example, it might switch comment scoring to sentence averaging:
//
//	p, err := opine.NewPipeline(opine.WithScoreMode(opine.SentenceAverage))
type PipelineOpt func(*Pipeline)

// WithScoreMode selects whole-text or sentence-averaged comment scoring.
func WithScoreMode(mode ScoreMode) PipelineOpt {
	return func(p *Pipeline) {
		p.mode = mode
	}
}

// WithTopPercent sets the fraction of the distinct vocabulary kept by
// token aggregation. Must be in (0, 1].
func WithTopPercent(percent float64) PipelineOpt {
	return func(p *Pipeline) {
		p.topPercent = percent
	}
}

// WithNegationWindow sets the negation window width.
func WithNegationWindow(window int) PipelineOpt {
	return func(p *Pipeline) {
		p.window = window
	}
}

// WithScorer replaces the default scorer.
func WithScorer(s *Scorer) PipelineOpt {
	return func(p *Pipeline) {
		p.scorer = s
	}
}

// A Pipeline owns the stage sequence from raw records to scored output.
// All shared state is constructed up front and read-only while running.
type Pipeline struct {
	norm      *Normalizer
	stops     *StopSet
	compactor *NegationCompactor
	scorer    *Scorer

	mode       ScoreMode
	topPercent float64
	window     int
}

// A Result bundles the pipeline's two output record streams with the
// reconciliation map the renderers need to label tokens.
type Result struct {
	Comments []ScoredComment // In input order.
	Tokens   []ScoredToken   // Top tokens, retained after scoring.
	Mapping  *StemLemmaMap
}

// NewPipeline constructs a pipeline according to the given options.
func NewPipeline(opts ...PipelineOpt) (*Pipeline, error) {
	p := &Pipeline{
		mode:       SentenceAverage,
		topPercent: 0.2,
		window:     DefaultNegationWindow,
	}
	for _, applyOpt := range opts {
		applyOpt(p)
	}

	if p.topPercent <= 0 || p.topPercent > 1 {
		return nil, fmt.Errorf("top percent %v outside (0, 1]", p.topPercent)
	}
	if p.window <= 0 {
		return nil, fmt.Errorf("negation window %d must be positive", p.window)
	}

	norm, err := NewNormalizer()
	if err != nil {
		return nil, fmt.Errorf("build normalizer: %w", err)
	}
	p.norm = norm
	p.stops = NewStopSet()
	p.compactor = NewNegationCompactor(p.window)
	if p.scorer == nil {
		p.scorer = NewScorer()
	}
	return p, nil
}

// Run processes records end to end: normalize, filter, compact, then the
// corpus-wide reconciliation, scoring, and aggregation passes. An empty
// record slice degrades to an empty Result, not an error.
func (p *Pipeline) Run(records []Record) (*Result, error) {
	comments := p.normalizeAll(records)

	for _, c := range comments {
		p.stops.Filter(c)
		p.compactor.Compact(c)
	}

	mapping := BuildStemLemmaMap(comments)

	scoredComments := p.scorer.ScoreComments(comments, p.mode)
	topTokens := TopStemTokens(comments, p.topPercent)
	scoredTokens := p.scorer.ScoreTokens(topTokens, mapping)

	return &Result{
		Comments: scoredComments,
		Tokens:   scoredTokens,
		Mapping:  mapping,
	}, nil
}

// normalizeAll normalizes comments in parallel. Each comment is owned by
// exactly one worker, so the map phase needs no locking; the join below
// is the single barrier before the corpus-wide stages.
func (p *Pipeline) normalizeAll(records []Record) []*Comment {
	comments := make([]*Comment, len(records))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(records) {
		workers = len(records)
	}
	if workers <= 1 {
		for i, rec := range records {
			comments[i] = p.norm.Normalize(rec)
		}
		return comments
	}

	var wg sync.WaitGroup
	indexes := make(chan int)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				comments[i] = p.norm.Normalize(records[i])
			}
		}()
	}
	for i := range records {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return comments
}
