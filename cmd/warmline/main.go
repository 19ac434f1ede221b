package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/warmlinehq/warmline"
	"github.com/warmlinehq/warmline/anthropic"
	"github.com/warmlinehq/warmline/apollo"
	"github.com/warmlinehq/warmline/discover"
	"github.com/warmlinehq/warmline/extract"
	"github.com/warmlinehq/warmline/gemini"
	wlgoquery "github.com/warmlinehq/warmline/goquery"
	wlhttp "github.com/warmlinehq/warmline/http"
	"github.com/warmlinehq/warmline/ingest"
	"github.com/warmlinehq/warmline/postgrest"
	"github.com/warmlinehq/warmline/rod"
	wlslog "github.com/warmlinehq/warmline/slog"
	"github.com/warmlinehq/warmline/sqlite"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	PeopleService warmline.PeopleService
	SourceService warmline.SourceService

	// Matcher, when set before Run(), replaces the Apollo client wiring.
	Matcher warmline.Matcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("warmline"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'warmline --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WARMLINE_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	// Wire core services into dependencies
	m.PeopleService = sqlite.NewPeopleService(m.DB)
	m.SourceService = sqlite.NewSourceService(m.DB)
	deps.DB = m.DB
	deps.People = m.PeopleService
	deps.Sources = m.SourceService

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	if cmd == "discover" {
		pipeline, closeFn, err := m.buildPipeline(ctx, cli, logger, stderr)
		if err != nil {
			return err
		}
		defer closeFn()
		deps.Pipeline = pipeline
	}

	if cmd == "enrich" {
		if m.Matcher == nil {
			apiKey := os.Getenv("APOLLO_API_KEY")
			if apiKey == "" {
				fmt.Fprintln(stderr, "APOLLO_API_KEY environment variable not set")
				return warmline.Errorf(warmline.ECONFIG, "APOLLO_API_KEY not set")
			}
			m.Matcher = apollo.NewMatcher(apiKey)
		}
		deps.Matcher = m.Matcher
	}

	return kongCtx.Run(deps)
}

// buildPipeline assembles the discovery pipeline from the environment and
// the parsed discover flags. The returned close function releases the
// fetchers.
func (m *Main) buildPipeline(ctx context.Context, cli *CLI, logger *slog.Logger, stderr io.Writer) (*discover.Pipeline, func(), error) {
	completer, err := buildCompleter(ctx, stderr)
	if err != nil {
		return nil, nil, err
	}

	fetcher := wlslog.NewLoggingFetcher(wlhttp.NewFetcher(), logger)
	closers := []warmline.Fetcher{fetcher}

	var browser warmline.Fetcher
	if cli.Discover.Browser {
		browserFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		browser = browserFetcher
		closers = append(closers, browserFetcher)
	}

	var store warmline.PeopleStore = m.PeopleService
	if cli.Discover.Remote {
		baseURL := os.Getenv("WARMLINE_STORE_URL")
		apiKey := os.Getenv("WARMLINE_STORE_KEY")
		if baseURL == "" || apiKey == "" {
			fmt.Fprintln(stderr, "WARMLINE_STORE_URL and WARMLINE_STORE_KEY must be set for --remote")
			return nil, nil, warmline.Errorf(warmline.ECONFIG, "remote store credentials not set")
		}
		store = postgrest.NewPeopleStore(baseURL, apiKey)
	}

	pipeline := &discover.Pipeline{
		Sources:   m.SourceService,
		Fetcher:   fetcher,
		Browser:   browser,
		Capturer:  wlgoquery.NewCapturer(),
		Extractor: extract.NewExtractor(wlslog.NewLoggingCompleter(completer, logger)),
		Submitter: ingest.NewSubmitter(wlslog.NewLoggingStore(store, logger)),
		Logger:    logger,
		DryRun:    cli.Discover.DryRun,
	}

	closeFn := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}
	return pipeline, closeFn, nil
}

// buildCompleter picks the completion service from the environment.
// An Anthropic key takes precedence; a Gemini key is the fallback.
func buildCompleter(ctx context.Context, stderr io.Writer) (warmline.Completer, error) {
	if apiKey := os.Getenv("ANTHROPIC_API_KEY"); apiKey != "" {
		return anthropic.NewCompleter(apiKey), nil
	}

	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewCompleter(client), nil
	}

	fmt.Fprintln(stderr, "Set ANTHROPIC_API_KEY or GEMINI_API_KEY to enable extraction")
	return nil, warmline.Errorf(warmline.ECONFIG, "no completion service credential set")
}

func defaultDBPath() string {
	if path := os.Getenv("WARMLINE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "warmline.db"
	}
	dir := filepath.Join(home, ".warmline")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "warmline.db")
}
