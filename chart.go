package opine

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveCommentsTrend renders the comment-score histogram to path. The
// score range is split into steps equal-width chunks and each bar shows
// how many comments fall in that chunk, labelled with the chunk's center
// value. An empty score list or a non-positive step count is an error,
// reported before any file is created.
func SaveCommentsTrend(scores []float64, path string, steps int) error {
	if len(scores) == 0 || steps <= 0 {
		return fmt.Errorf("comments trend: need scores and a positive step count, got %d scores and steps=%d", len(scores), steps)
	}

	minV, maxV := scores[0], scores[0]
	for _, v := range scores[1:] {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	binWidth := (maxV - minV) / float64(steps)
	counts := make(plotter.Values, steps)
	labels := make([]string, steps)
	for i := range labels {
		center := minV + (float64(i)+0.5)*binWidth
		labels[i] = fmt.Sprintf("%.2f", center)
	}
	for _, v := range scores {
		idx := 0
		if binWidth > 0 {
			idx = int((v - minV) / binWidth)
			if idx >= steps {
				idx = steps - 1
			}
		}
		counts[idx]++
	}

	p := plot.New()
	p.Title.Text = "Sentiment Trend of Comments"
	p.X.Label.Text = "Sentiment Score"
	p.Y.Label.Text = "Comment Count"

	bars, err := plotter.NewBarChart(counts, vg.Points(30))
	if err != nil {
		return fmt.Errorf("comments trend: %w", err)
	}
	bars.Color = plotutil.Color(2)
	bars.LineStyle.Width = vg.Points(0.6)
	p.Add(bars)
	p.NominalX(labels...)

	return savePlot(p, path)
}

// SaveTokensTrend renders the token-score chart to path: tokens sorted by
// score on a line with scatter points, each labelled with its lemma form
// (the negative label for negation-tagged stems). An empty token list is
// an error, reported before any file is created.
func SaveTokensTrend(tokens []ScoredToken, m *StemLemmaMap, path string) error {
	if len(tokens) == 0 {
		return fmt.Errorf("tokens trend: no tokens to render")
	}

	sorted := make([]ScoredToken, len(tokens))
	copy(sorted, tokens)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Score < sorted[j].Score })

	xys := make(plotter.XYs, len(sorted))
	names := make([]string, len(sorted))
	for i, tok := range sorted {
		xys[i].X = tok.Score
		xys[i].Y = float64(tok.Count)
		names[i] = m.Resolve(tok.Token, NegativeLabel)
	}

	p := plot.New()
	p.Title.Text = "Sentiment Trend of Tokens"
	p.X.Label.Text = "Sentiment Score"
	p.Y.Label.Text = "Token Appear Count"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("tokens trend: %w", err)
	}
	line.Color = color.RGBA{R: 0xad, G: 0xd8, B: 0xe6, A: 0xff}
	line.Width = vg.Points(1.5)

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("tokens trend: %w", err)
	}
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Color = plotutil.Color(0)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
	if err != nil {
		return fmt.Errorf("tokens trend: %w", err)
	}

	p.Add(line, scatter, labels)

	return savePlot(p, path)
}

func savePlot(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create plot dir: %w", err)
	}
	if err := p.Save(14*vg.Inch, 7*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
