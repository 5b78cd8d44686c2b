package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/wordfreq"
	"github.com/fwojciec/wordfreq/analyze"
	"github.com/fwojciec/wordfreq/echarts"
	"github.com/fwojciec/wordfreq/goquery"
	"github.com/fwojciec/wordfreq/gse"
	wfhttp "github.com/fwojciec/wordfreq/http"
	"github.com/fwojciec/wordfreq/lru"
	"github.com/fwojciec/wordfreq/readability"
	wfslog "github.com/fwojciec/wordfreq/slog"
	"github.com/fwojciec/wordfreq/trafilatura"
	"github.com/fwojciec/wordfreq/uax29"
	"github.com/fwojciec/wordfreq/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var reported *ReportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// ReportedError marks an error whose details a command already wrote to
// stderr, so main only sets the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. Defaults are built when nil.
	Fetcher   wordfreq.Fetcher
	Segmenter wordfreq.Segmenter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	parser, err := kong.New(cli,
		kong.Name("wordfreq"),
		kong.Description("Count the most frequent words of a web page and chart them"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wordfreq --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	analyzer, err := m.analyzer(cli, deps.Logger)
	if err != nil {
		return err
	}
	deps.Analyzer = wfslog.NewLoggingAnalyzer(analyzer, deps.Logger)
	deps.Charts = echarts.NewRenderer()

	if strings.HasPrefix(kongCtx.Command(), "serve") {
		sessions, err := lru.NewSessionService(cli.Serve.Sessions)
		if err != nil {
			return fmt.Errorf("failed to create session store: %w", err)
		}
		deps.Sessions = sessions
	}

	return kongCtx.Run(deps)
}

// analyzer builds the pipeline selected by the global flags.
func (m *Main) analyzer(cli *CLI, logger *slog.Logger) (*analyze.Analyzer, error) {
	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher = wfhttp.NewFetcher(wfhttp.WithTimeout(cli.Timeout))
	}

	var extractor wordfreq.Extractor = goquery.NewExtractor()
	switch cli.Extractor {
	case "readability":
		extractor = readability.NewExtractor(extractor)
	case "trafilatura":
		extractor = trafilatura.NewExtractor(extractor)
	}

	segmenter := m.Segmenter
	if segmenter == nil {
		switch cli.Segmenter {
		case "unicode":
			segmenter = uax29.NewSegmenter()
		default:
			logger.Debug("loading dictionary", "files", cli.Dict)
			seg, err := gse.NewSegmenter(cli.Dict)
			if err != nil {
				return nil, err
			}
			segmenter = seg
		}
	}

	stop := wordfreq.NewStopWords(cli.StopWord...)
	if cli.StopWords != "" {
		fromFile, err := yaml.LoadStopWords(cli.StopWords)
		if err != nil {
			return nil, fmt.Errorf("failed to load stop words from %q: %w", cli.StopWords, err)
		}
		stop = stop.Merge(fromFile)
	}
	logger.Debug("stop words", "count", len(stop))

	return &analyze.Analyzer{
		Fetcher:   wfslog.NewLoggingFetcher(fetcher, logger),
		Extractor: extractor,
		Segmenter: segmenter,
		StopWords: stop,
		Sections:  wordfreq.DefaultSections,
	}, nil
}
