package opine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// DumpCommentsCSV writes scored comments to path with the fixed header
// "comment,score", in processing order. Parent directories are created
// as needed.
func DumpCommentsCSV(path string, comments []ScoredComment) error {
	return writeCSV(path, [][]string{{"comment", "score"}}, func(rows [][]string) [][]string {
		for _, sc := range comments {
			rows = append(rows, []string{sc.Comment.Text, formatScore(sc.Score)})
		}
		return rows
	})
}

// DumpTokensCSV writes scored tokens to path with the fixed header
// "stem_token,lem_token,appear_count,score". The lem_token column is
// resolved through the stem→lemma map with the negative label substituted
// for negation-tagged stems.
func DumpTokensCSV(path string, tokens []ScoredToken, m *StemLemmaMap) error {
	return writeCSV(path, [][]string{{"stem_token", "lem_token", "appear_count", "score"}}, func(rows [][]string) [][]string {
		for _, tok := range tokens {
			rows = append(rows, []string{
				tok.Token,
				m.Resolve(tok.Token, NegativeLabel),
				strconv.Itoa(tok.Count),
				formatScore(tok.Score),
			})
		}
		return rows
	})
}

func writeCSV(path string, rows [][]string, fill func([][]string) [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(fill(rows)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'g', -1, 64)
}
