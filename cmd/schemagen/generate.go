package main

import (
	"fmt"
	"os"

	schemagen "github.com/mohyeeCT/schema-generator-llm"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	req := schemagen.GenerateRequest{
		URL:       c.URL,
		Category:  schemagen.Category(c.Category),
		PageType:  schemagen.PageType(c.PageType),
		SkipModel: c.NoModel,
	}

	result, err := deps.Service.Generate(deps.Ctx, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", schemagen.ErrorMessage(err))
		return err
	}

	pretty, err := result.Markup.MarshalIndent()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", schemagen.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stderr, "Page type: %s (detected: %s)\n", result.PageType, result.DetectedPageType)
	fmt.Fprintf(deps.Stderr, "Schema type: %s\n", result.Category)
	if result.ModelError != "" {
		fmt.Fprintf(deps.Stderr, "Model fallback: %s\n", result.ModelError)
	}

	analysis := schemagen.AnalyzeMarkup(result.Markup)
	fmt.Fprintf(deps.Stderr, "Quality: %d/100 (%s), %s\n", analysis.QualityScore, analysis.Grade, analysis.Complexity)

	if c.Output != "" {
		if err := os.WriteFile(c.Output, []byte(pretty+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stderr, "Wrote %s\n", c.Output)
		return nil
	}

	fmt.Fprintln(deps.Stdout, pretty)
	return nil
}
