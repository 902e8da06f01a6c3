package opine

import (
	"strings"
	"testing"
)

func TestNormalizeShape(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}

	tests := []struct {
		text      string
		sentences int
		tokens    []int
		desc      string
	}{
		{"This movie is not good at all.", 1, []int{8}, "Single sentence"},
		{"Great movie. Terrible acting.", 2, []int{3, 3}, "Two sentences"},
		{"", 0, nil, "Empty text"},
		{"   \t ", 0, nil, "Whitespace only"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			c := n.Normalize(Record{Text: tt.text, Timestamp: "t0"})
			if c.Text != tt.text {
				t.Errorf("original text mutated: %q", c.Text)
			}
			if len(c.Sentences) != tt.sentences {
				t.Fatalf("got %d sentences, want %d", len(c.Sentences), tt.sentences)
			}
			for i, want := range tt.tokens {
				if got := len(c.Sentences[i].Tokens); got != want {
					t.Errorf("sentence %d: got %d tokens, want %d", i, got, want)
				}
			}
		})
	}
}

func TestNormalizeViews(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}

	c := n.Normalize(Record{Text: "This movie is not good at all.", Timestamp: "t1"})
	if len(c.Sentences) != 1 {
		t.Fatalf("got %d sentences, want 1", len(c.Sentences))
	}

	for _, tok := range c.Sentences[0].Tokens {
		if tok.Word == "" || tok.Stem == "" || tok.Lemma == "" {
			t.Errorf("token %+v has an empty view before filtering", tok)
		}
		if tok.Lemma != strings.ToLower(tok.Lemma) {
			t.Errorf("lemma %q not lower-cased", tok.Lemma)
		}
	}

	// The stemmer's native casing is lower-case; "good" stems to itself.
	toks := c.Sentences[0].Tokens
	if toks[4].Word != "good" || toks[4].Stem != "good" || toks[4].Lemma != "good" {
		t.Errorf("unexpected views for %+v", toks[4])
	}
	if toks[0].Word != "This" || toks[0].Stem != "this" {
		t.Errorf("unexpected views for %+v", toks[0])
	}
}

func TestNormalizeTimestampOpaque(t *testing.T) {
	n, err := NewNormalizer()
	if err != nil {
		t.Fatalf("NewNormalizer: %v", err)
	}
	c := n.Normalize(Record{Text: "Fine.", Timestamp: "not-a-date"})
	if c.Timestamp != "not-a-date" {
		t.Errorf("timestamp = %q, want it carried through untouched", c.Timestamp)
	}
}
