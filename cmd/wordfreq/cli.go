package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wordfreq"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Analyzer wordfreq.Analyzer
	Charts   wordfreq.ChartRenderer
	Sessions wordfreq.SessionService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose   bool          `short:"v" help:"Enable debug logging"`
	Timeout   time.Duration `default:"30s" env:"WORDFREQ_TIMEOUT" help:"Page fetch timeout"`
	Extractor string        `default:"visible" enum:"visible,readability,trafilatura" help:"Text extraction: whole page (visible) or main article (readability, trafilatura)"`
	Segmenter string        `default:"dict" enum:"dict,unicode" help:"Word segmentation: dictionary-based for CJK (dict) or Unicode word boundaries (unicode)"`
	Dict      []string      `help:"Custom segmentation dictionary file (repeatable)"`
	StopWords string        `name:"stopwords" type:"path" env:"WORDFREQ_STOPWORDS" help:"YAML file with a 'terms' list of stop words"`
	StopWord  []string      `name:"stopword" short:"s" help:"Word to exclude from counting (repeatable)"`

	Serve   ServeCmd   `cmd:"" help:"Serve the browser UI"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze one page and print its most frequent words"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":8501" env:"WORDFREQ_ADDR" help:"Listen address"`
	Sessions int    `default:"1024" help:"Maximum number of browser sessions kept in memory"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL   string `arg:"" help:"Page URL"`
	Min   int    `short:"m" default:"1" help:"Minimum frequency for the filtered table"`
	Chart string `type:"path" help:"Write a chart of the top words to this HTML file"`
	Kind  string `short:"k" default:"wordcloud" enum:"wordcloud,bar,pie,line,scatter,radar,heatmap" help:"Chart kind written by --chart"`
}
