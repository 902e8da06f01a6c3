package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/opine-nlp/opine"
)

func main() {
	_ = godotenv.Load() // optional .env; flags still win

	cfg, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	printExitMessage(cfg)
}

func run(cfg Config) error {
	records, err := opine.ReadRecordsFile(cfg.InputStream)
	if err != nil {
		return err
	}

	mode := opine.WholeText
	if cfg.AverageMode {
		mode = opine.SentenceAverage
	}
	pipeline, err := opine.NewPipeline(
		opine.WithScoreMode(mode),
		opine.WithTopPercent(cfg.TokensPercent),
	)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(records)
	if err != nil {
		return err
	}

	scores := make([]float64, len(result.Comments))
	for i, sc := range result.Comments {
		scores[i] = sc.Score
	}

	if err := opine.SaveCommentsTrend(scores, filepath.Join(cfg.OutputPlotDir, "comments_sentiment_trend.png"), cfg.CommentChunks); err != nil {
		return err
	}
	if err := opine.SaveTokensTrend(result.Tokens, result.Mapping, filepath.Join(cfg.OutputPlotDir, "tokens_sentiment_trend.png")); err != nil {
		return err
	}

	if err := opine.DumpCommentsCSV(filepath.Join(cfg.OutputCSVDir, "comments_sentiment_trend.csv"), result.Comments); err != nil {
		return err
	}
	return opine.DumpTokensCSV(filepath.Join(cfg.OutputCSVDir, "tokens_sentiment_trend.csv"), result.Tokens, result.Mapping)
}

func printExitMessage(cfg Config) {
	wd, _ := os.Getwd()
	fmt.Println("Sentiment analysis pipeline has completed successfully.")
	fmt.Println()
	fmt.Printf("CSV files are saved to:\n\t%s\n", filepath.Join(wd, cfg.OutputCSVDir))
	fmt.Println()
	fmt.Printf("Visualization plots are saved to:\n\t%s\n", filepath.Join(wd, cfg.OutputPlotDir))
}
