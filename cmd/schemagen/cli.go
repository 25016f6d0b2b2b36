package main

import (
	"context"
	"io"
	"log/slog"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Service   schemagen.MarkupService
	Templates *schemagen.TemplateRegistry
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate  GenerateCmd  `cmd:"" help:"Generate Schema.org markup for a URL"`
	Serve     ServeCmd     `cmd:"" help:"Serve the generation form and API"`
	Templates TemplatesCmd `cmd:"" help:"List available schema templates"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	URL      string `arg:"" help:"Page URL (http or https)"`
	Category string `short:"c" help:"Schema type (default: suggest from page type)"`
	PageType string `short:"p" name:"page-type" help:"Page type (default: detect)"`
	RenderJS bool   `name:"render-js" help:"Render the page in a headless browser first"`
	NoModel  bool   `name:"no-model" help:"Skip the model and use the template fallback"`
	Output   string `short:"o" help:"Write the markup to a file instead of stdout"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":8080" help:"Listen address"`
	RenderJS bool   `name:"render-js" help:"Render pages in a headless browser"`
	NoModel  bool   `name:"no-model" help:"Skip the model and use the template fallback"`
}

// TemplatesCmd is the "templates" subcommand.
type TemplatesCmd struct{}
