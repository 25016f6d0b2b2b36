package main

import (
	"fmt"
)

// Run executes the templates command.
func (c *TemplatesCmd) Run(deps *Dependencies) error {
	for _, cat := range deps.Templates.List() {
		fmt.Fprintf(deps.Stdout, "%-18s %s\n", cat, deps.Templates.Describe(cat))
	}
	return nil
}
