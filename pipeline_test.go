package opine

import "testing"

func TestPipelineEndToEnd(t *testing.T) {
	p, err := NewPipeline(WithScoreMode(WholeText), WithTopPercent(1.0))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	records := []Record{
		{Text: "This movie is not good at all.", Timestamp: "2023-01-01T00:00:00Z"},
	}
	result, err := p.Run(records)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(result.Comments))
	}
	if got := result.Comments[0].Score; got >= 0 {
		t.Errorf("negated comment scored %v, want < 0", got)
	}
	if got := result.Comments[0].Comment.Text; got != records[0].Text {
		t.Errorf("comment text = %q, want input text", got)
	}

	// The only token with both a reconciled lemma and a nonzero polarity
	// is the negation-tagged stem of "good".
	if len(result.Tokens) != 1 {
		t.Fatalf("got tokens %v, want exactly one", result.Tokens)
	}
	tok := result.Tokens[0]
	if tok.Token != "NEG_good" {
		t.Errorf("token = %q, want %q", tok.Token, "NEG_good")
	}
	if tok.Count != 1 {
		t.Errorf("count = %d, want 1", tok.Count)
	}
	if tok.Score >= 0 {
		t.Errorf("inverted token scored %v, want < 0", tok.Score)
	}

	if got := result.Mapping.Resolve("movi", NegativeLabel); got != "movie" {
		t.Errorf("Resolve(movi) = %q, want %q", got, "movie")
	}
	if got := result.Mapping.Resolve("NEG_good", NegativeLabel); got != "(negative) good" {
		t.Errorf("Resolve(NEG_good) = %q, want %q", got, "(negative) good")
	}
}

func TestPipelineEmptyInput(t *testing.T) {
	p, err := NewPipeline()
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	result, err := p.Run(nil)
	if err != nil {
		t.Fatalf("Run on empty input: %v", err)
	}
	if len(result.Comments) != 0 || len(result.Tokens) != 0 {
		t.Errorf("got %d comments and %d tokens, want empty result", len(result.Comments), len(result.Tokens))
	}
}

func TestPipelineManyRecords(t *testing.T) {
	// Enough records to exercise the parallel normalization path.
	texts := []string{
		"I love this product!",
		"Absolutely terrible, would not buy again.",
		"It arrived on time.",
		"Best purchase I have made this year.",
		"The quality is not what I expected.",
		"Fine.",
		"",
		"Works well. Setup was easy. Happy with it.",
	}
	records := make([]Record, 0, len(texts)*4)
	for i := 0; i < 4; i++ {
		for _, text := range texts {
			records = append(records, Record{Text: text, Timestamp: "t"})
		}
	}

	p, err := NewPipeline(WithTopPercent(0.5))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}
	result, err := p.Run(records)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(result.Comments) != len(records) {
		t.Fatalf("got %d comments, want %d", len(result.Comments), len(records))
	}
	for i, sc := range result.Comments {
		if sc.Comment.Text != records[i].Text {
			t.Fatalf("comment %d out of input order: %q", i, sc.Comment.Text)
		}
	}
	for _, tok := range result.Tokens {
		if tok.Score == 0 {
			t.Errorf("neutral token %q survived scoring", tok.Token)
		}
		if tok.Count <= 0 {
			t.Errorf("token %q has count %d", tok.Token, tok.Count)
		}
	}
}

func TestNewPipelineRejectsBadOptions(t *testing.T) {
	tests := []struct {
		opt  PipelineOpt
		desc string
	}{
		{WithTopPercent(0), "Zero percent"},
		{WithTopPercent(-0.1), "Negative percent"},
		{WithTopPercent(1.5), "Percent above one"},
		{WithNegationWindow(0), "Zero window"},
		{WithNegationWindow(-2), "Negative window"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if _, err := NewPipeline(tt.opt); err == nil {
				t.Error("NewPipeline accepted invalid option")
			}
		})
	}
}
