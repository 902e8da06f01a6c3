package opine

import (
	"strings"

	"github.com/kljensen/snowball"
	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Normalizer turns raw comment text into a Comment with sentence, word,
// stem, and lemma views populated. It is constructed once and shared
// read-only across all pipeline invocations.
type Normalizer struct {
	segmenter *sentences.DefaultSentenceTokenizer
	words     *WordTokenizer
	lemmas    *Lemmatizer
}

// NewNormalizer creates a Normalizer with the default English sentence
// segmenter, word tokenizer, and lemma dictionary.
func NewNormalizer() (*Normalizer, error) {
	segmenter, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	lemmas, err := NewLemmatizer()
	if err != nil {
		return nil, err
	}
	return &Normalizer{
		segmenter: segmenter,
		words:     NewWordTokenizer(),
		lemmas:    lemmas,
	}, nil
}

// Normalize builds the Comment for one input record. Empty text yields a
// comment with zero sentences; normalization has no failure path.
func (n *Normalizer) Normalize(rec Record) *Comment {
	c := &Comment{
		Text:      rec.Text,
		Timestamp: rec.Timestamp,
	}
	if strings.TrimSpace(rec.Text) == "" {
		return c
	}

	for _, sent := range n.segmenter.Tokenize(rec.Text) {
		text := strings.TrimSpace(sent.Text)
		if text == "" {
			continue
		}
		words := n.words.Tokenize(text)
		st := SentenceTokens{
			Text:   text,
			Tokens: make([]TokenView, len(words)),
		}
		for i, word := range words {
			st.Tokens[i] = TokenView{
				Word:  word,
				Stem:  stemWord(word),
				Lemma: strings.ToLower(n.lemmas.Lemmatize(word)),
			}
		}
		c.Sentences = append(c.Sentences, st)
	}
	return c
}

// stemWord stems a single token, falling back to the token itself for
// input the stemmer rejects (punctuation, digits).
func stemWord(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}
