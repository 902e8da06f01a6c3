package main

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	InputStream    string
	OutputCSVDir   string
	OutputPlotDir  string
	CommentChunks  int
	TokensPercent  float64
	AverageMode    bool
}

func (c Config) Validate() error {
	if c.InputStream == "" {
		return errors.New("missing -input-stream")
	}
	if c.OutputCSVDir == "" {
		return errors.New("missing -output-csv-dir")
	}
	if c.OutputPlotDir == "" {
		return errors.New("missing -output-plot-dir")
	}
	if c.CommentChunks <= 0 {
		return errors.New("visual-comments-chunks must be > 0")
	}
	if c.TokensPercent <= 0 || c.TokensPercent > 1 {
		return errors.New("visual-tokens-percent must be in (0, 1]")
	}
	return nil
}

func defaultConfig() Config {
	cfg := Config{
		CommentChunks: 20,
		TokensPercent: 1.0,
		AverageMode:   true,
	}
	if v := os.Getenv("OPINE_CSV_DIR"); v != "" {
		cfg.OutputCSVDir = v
	}
	if v := os.Getenv("OPINE_PLOT_DIR"); v != "" {
		cfg.OutputPlotDir = v
	}
	if v := os.Getenv("OPINE_COMMENT_CHUNKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CommentChunks = n
		}
	}
	return cfg
}

func parseFlags(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := defaultConfig()
	fs.StringVar(&cfg.InputStream, "input-stream", cfg.InputStream, "input stream file path, newline-delimited JSON")
	fs.StringVar(&cfg.OutputCSVDir, "output-csv-dir", cfg.OutputCSVDir, "output dir for the sentiment analysis CSV files")
	fs.StringVar(&cfg.OutputPlotDir, "output-plot-dir", cfg.OutputPlotDir, "output dir for the visualization images")
	fs.IntVar(&cfg.CommentChunks, "visual-comments-chunks", cfg.CommentChunks, "chunk count for the comment sentiment trend chart")
	fs.Float64Var(&cfg.TokensPercent, "visual-tokens-percent", cfg.TokensPercent, "top fraction of tokens to analyse and chart")
	fs.BoolVar(&cfg.AverageMode, "average-mode", cfg.AverageMode, "score comments as the mean of per-sentence scores")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
