package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/textract"
	"github.com/fwojciec/textract/batch"
	"github.com/fwojciec/textract/fs"
	"github.com/fwojciec/textract/goquery"
	texthttp "github.com/fwojciec/textract/http"
	"github.com/fwojciec/textract/readability"
	"github.com/fwojciec/textract/rod"
	textslog "github.com/fwojciec/textract/slog"
	"github.com/fwojciec/textract/sqlite"
	"github.com/fwojciec/textract/trafilatura"
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
	// Database path. Overridden by --db or TEXTRACT_DB.
	DBPath string

	// Stdin is read when "-" is given as a source.
	Stdin io.Reader

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService textract.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
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
		Logger: slog.New(slog.DiscardHandler),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("textract"),
		kong.Description("Extract plain text from HTML documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'textract --help' to see available commands")
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
	cmd = strings.Fields(kongCtx.Command())[0]

	if cli.DB != "" {
		m.DBPath = cli.DB
	}

	if cmd != "extract" || cli.Extract.Save || cli.Extract.Unique {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set TEXTRACT_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RecordService = sqlite.NewRecordService(m.DB)
		deps.Records = m.RecordService
	}

	if cmd == "extract" {
		ec := &cli.Extract
		if ec.Verbose {
			deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
		}

		runner := &batch.Runner{
			Extractor:   textslog.NewLoggingExtractor(newExtractor(ec.Backend), ec.Backend, deps.Logger),
			Loader:      &fs.Loader{Stdin: m.Stdin},
			RateLimiter: batch.NewDomainLimiter(ec.RPS),
			Config:      ec.config(),
			Concurrency: ec.Concurrency,
		}

		if hasRemote(ec.Sources) {
			fetcher, err := newFetcher(ec)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --browser")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer fetcher.Close()
			runner.Fetcher = textslog.NewLoggingFetcher(fetcher, deps.Logger)

			client := &http.Client{Timeout: ec.Timeout}
			deps.Sitemaps = textslog.NewLoggingSitemapService(texthttp.NewSitemapService(client), deps.Logger)
		}
		deps.Runner = runner

		if ec.OutputDir != "" {
			deps.Store = fs.NewFileStore(ec.OutputDir)
		}
	}

	return kongCtx.Run(deps)
}

// newExtractor returns the extractor for a backend name accepted by the
// --backend flag.
func newExtractor(backend string) textract.Extractor {
	switch backend {
	case BackendTrafilatura:
		return trafilatura.NewExtractor()
	case BackendReadability:
		return readability.NewExtractor()
	default:
		return goquery.NewExtractor()
	}
}

func newFetcher(ec *ExtractCmd) (textract.Fetcher, error) {
	if ec.Browser {
		return rod.NewFetcher(rod.WithFetchTimeout(ec.Timeout))
	}
	return texthttp.NewFetcher(texthttp.WithTimeout(ec.Timeout)), nil
}

func hasRemote(sources []string) bool {
	for _, s := range sources {
		if batch.IsRemote(s) {
			return true
		}
	}
	return false
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "textract.db"
	}
	dir := filepath.Join(home, ".textract")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "textract.db")
}
