package opine

import "sort"

// TopStemTokens counts every nonempty stem token across the corpus and
// returns the most frequent fraction of the distinct vocabulary, ordered
// by descending count. Among equal counts the lexicographically larger
// token sorts first. The result holds floor(distinct × percent) entries,
// so selection scales with corpus diversity rather than being a fixed
// absolute count.
func TopStemTokens(comments []*Comment, percent float64) []ScoredToken {
	counts := make(map[string]int)
	for _, c := range comments {
		for _, sent := range c.Sentences {
			for _, tok := range sent.Tokens {
				if tok.Stem == "" {
					continue
				}
				counts[tok.Stem]++
			}
		}
	}

	tokens := make([]ScoredToken, 0, len(counts))
	for stem, count := range counts {
		tokens = append(tokens, ScoredToken{Token: stem, Count: count})
	}
	sort.Slice(tokens, func(i, j int) bool {
		if tokens[i].Count != tokens[j].Count {
			return tokens[i].Count > tokens[j].Count
		}
		return tokens[i].Token > tokens[j].Token
	})

	cut := int(float64(len(tokens)) * percent)
	if cut > len(tokens) {
		cut = len(tokens)
	}
	return tokens[:cut]
}
