package opine

import "strings"

// A StemLemmaMap recovers human-readable lemma forms from stem tokens.
// It is built once across the whole corpus after normalization and
// compaction, and is read-only afterwards.
//
// Insertion is first-write-wins: the lemma seen at a stem's first
// occurrence sticks, and later conflicting lemmatizations of the same
// stem are silently discarded. Lemmatization can drift between
// occurrences of a stem; pinning the first keeps output deterministic.
type StemLemmaMap struct {
	mapping map[string]string
}

// BuildStemLemmaMap walks every aligned (stem, lemma) pair in every
// comment and records the first lemma seen for each stem. Pairs where
// either side is the empty placeholder are skipped.
func BuildStemLemmaMap(comments []*Comment) *StemLemmaMap {
	m := &StemLemmaMap{mapping: make(map[string]string)}
	for _, c := range comments {
		for _, sent := range c.Sentences {
			for _, tok := range sent.Tokens {
				if tok.Stem == "" || tok.Lemma == "" {
					continue
				}
				if _, ok := m.mapping[tok.Stem]; ok {
					continue
				}
				m.mapping[tok.Stem] = tok.Lemma
			}
		}
	}
	return m
}

// Contains reports whether stem has a recorded lemma.
func (m *StemLemmaMap) Contains(stem string) bool {
	_, ok := m.mapping[stem]
	return ok
}

// Len returns the number of distinct stems recorded.
func (m *StemLemmaMap) Len() int {
	return len(m.mapping)
}

// Resolve returns the lemma form for stem. For a negation-tagged stem the
// result is negLabel, a space, and the lemma of the underlying token —
// resolved from the tagged key when the corpus recorded one, otherwise
// from the bare key, otherwise the bare stem itself. For a plain stem the
// lookup falls back to the stem unchanged. Resolve never fails.
func (m *StemLemmaMap) Resolve(stem, negLabel string) string {
	if base, tagged := strings.CutPrefix(stem, NegPrefix); tagged {
		lemma, ok := m.mapping[stem]
		if !ok {
			if lemma, ok = m.mapping[base]; !ok {
				lemma = base
			}
		}
		return negLabel + " " + lemma
	}
	if lemma, ok := m.mapping[stem]; ok {
		return lemma
	}
	return stem
}
