package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/querysum"
	"github.com/fwojciec/querysum/exec"
	"github.com/fwojciec/querysum/fs"
	"github.com/fwojciec/querysum/gemini"
	"github.com/fwojciec/querysum/goquery"
	"github.com/fwojciec/querysum/ollama"
	"github.com/fwojciec/querysum/readability"
	"github.com/fwojciec/querysum/session"
	qsslog "github.com/fwojciec/querysum/slog"
	"github.com/fwojciec/querysum/trafilatura"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A missing .env file is not an error.
	_ = godotenv.Load()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	code := Report(os.Stderr, err)
	stop()
	os.Exit(code)
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run builds them from flags.
	Searcher   querysum.Searcher
	Summarizer querysum.Summarizer
	Pacer      querysum.Pacer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run parses args, wires the services and runs one interactive session.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("querysum"),
		kong.Description("Search crawled pages and summarize the top results."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(LoadYAML),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	for _, arg := range args {
		if arg == "--help" || arg == "-h" {
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	summarizer, err := m.summarizer(ctx, cli)
	if err != nil {
		return err
	}

	searcher := m.Searcher
	if searcher == nil {
		s, err := exec.Start(cli.Querier, []string{cli.PageDirectory, cli.IndexFile}, exec.WithLogger(logger))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: set --querier or QUERYSUM_QUERIER to the querier executable")
			return err
		}
		searcher = s
	}

	driver := &session.Driver{
		Searcher:    qsslog.NewLoggingSearcher(searcher, logger),
		Documents:   qsslog.NewLoggingDocumentStore(fs.NewDocumentStore(cli.PageDirectory), logger),
		Outliner:    qsslog.NewLoggingOutliner(newOutliner(cli.MainContent), logger),
		Summarizer:  qsslog.NewLoggingSummarizer(summarizer, logger),
		Pacer:       m.pacer(cli),
		Stdin:       stdin,
		Stdout:      stdout,
		Stderr:      stderr,
		Logger:      logger,
		KeepGoing:   cli.KeepGoing,
		FullSummary: cli.FullSummary,
	}
	return driver.Run(ctx)
}

// Report prints err, if any, and returns the process exit code for it.
func Report(w io.Writer, err error) int {
	if err == nil {
		return querysum.ExitOK
	}
	var e *querysum.Error
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "interrupted")
	} else if errors.As(err, &e) {
		fmt.Fprintf(w, "error: %s\n", e.Message)
	} else {
		fmt.Fprintf(w, "error: %s\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error returned by Run to the process exit code.
func ExitCode(err error) int {
	var perr *kong.ParseError
	if errors.As(err, &perr) {
		return querysum.ExitUsage
	}
	return querysum.ExitCode(err)
}

// newLogger returns a text logger tagged with a fresh session ID. Only
// warnings are shown unless verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("session", uuid.NewString())
}

func (m *Main) summarizer(ctx context.Context, cli *CLI) (querysum.Summarizer, error) {
	if m.Summarizer != nil {
		return m.Summarizer, nil
	}

	switch cli.Backend {
	case "gemini":
		if cli.APIKey == "" {
			return nil, querysum.Errorf(querysum.EINVALID, "GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     cli.APIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cli.Timeout},
		})
		if err != nil {
			return nil, querysum.Errorf(querysum.EUPSTREAM, "failed to connect to Gemini API: %v", err)
		}
		return gemini.NewSummarizer(client, cli.Model), nil
	default:
		opts := []ollama.Option{ollama.WithTimeout(cli.Timeout)}
		if cli.Endpoint != "" {
			opts = append(opts, ollama.WithBaseURL(cli.Endpoint))
		}
		if cli.Model != "" {
			opts = append(opts, ollama.WithModel(cli.Model))
		}
		return ollama.NewSummarizer(opts...), nil
	}
}

func (m *Main) pacer(cli *CLI) querysum.Pacer {
	if m.Pacer != nil {
		return m.Pacer
	}
	if cli.Pace == "interval" {
		return session.NewIntervalPacer(cli.Pause)
	}
	return session.NewFixedPacer(cli.Pause)
}

func newOutliner(mainContent string) querysum.Outliner {
	switch mainContent {
	case "trafilatura":
		return goquery.NewOutliner(goquery.WithExtractor(trafilatura.NewExtractor()))
	case "readability":
		return goquery.NewOutliner(goquery.WithExtractor(readability.NewExtractor()))
	default:
		return goquery.NewOutliner()
	}
}
