package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	schemagen "github.com/mohyeeCT/schema-generator-llm"
	"github.com/mohyeeCT/schema-generator-llm/gemini"
	"github.com/mohyeeCT/schema-generator-llm/goquery"
	"github.com/mohyeeCT/schema-generator-llm/htmltomarkdown"
	schemagenhttp "github.com/mohyeeCT/schema-generator-llm/http"
	"github.com/mohyeeCT/schema-generator-llm/lingua"
	"github.com/mohyeeCT/schema-generator-llm/pipeline"
	"github.com/mohyeeCT/schema-generator-llm/readability"
	"github.com/mohyeeCT/schema-generator-llm/rod"
	schemagenslog "github.com/mohyeeCT/schema-generator-llm/slog"
	"github.com/mohyeeCT/schema-generator-llm/trafilatura"
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
	// Closers collected while wiring, released after the command runs.
	closers []func() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close releases resources acquired while wiring.
func (m *Main) Close() error {
	var firstErr error
	for _, closeFn := range m.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	m.closers = nil
	return firstErr
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Logger:    logger,
		Templates: schemagen.NewTemplateRegistry(),
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("schemagen"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'schemagen --help' to see available commands")
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

	switch cmd {
	case "generate":
		deps.Service, err = m.buildService(ctx, logger, stderr, cli.Generate.RenderJS, cli.Generate.NoModel)
	case "serve":
		deps.Service, err = m.buildService(ctx, logger, stderr, cli.Serve.RenderJS, cli.Serve.NoModel)
	}
	if err != nil {
		return err
	}
	defer m.Close()

	return kongCtx.Run(deps)
}

// buildService wires the pipeline for the generate and serve commands.
func (m *Main) buildService(ctx context.Context, logger *slog.Logger, stderr io.Writer, renderJS, noModel bool) (schemagen.MarkupService, error) {
	var fetcher schemagen.Fetcher
	if renderJS {
		browserFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render-js")
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = browserFetcher
	} else {
		fetcher = schemagenhttp.NewFetcher()
	}
	m.closers = append(m.closers, fetcher.Close)
	fetcher = schemagenslog.NewLoggingFetcher(fetcher, logger)

	var generator schemagen.Generator
	if !noModel {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey, or pass --no-model for template-only output.")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		generator = gemini.NewGenerator(client)
	}

	p := &pipeline.Pipeline{
		Fetcher:          fetcher,
		Extractor:        goquery.NewExtractor(goquery.WithLanguageDetector(lingua.NewDetector())),
		Detector:         goquery.NewDetector(),
		Templates:        schemagen.NewTemplateRegistry(),
		Generator:        generator,
		ContentExtractor: pipeline.ChainExtractor{
			trafilatura.NewExtractor(),
			readability.NewExtractor(),
		},
		Converter:        htmltomarkdown.NewConverter(),
	}

	return schemagenslog.NewLoggingService(p, logger), nil
}
