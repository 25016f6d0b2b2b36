package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	schemagengin "github.com/mohyeeCT/schema-generator-llm/gin"
)

// shutdownTimeout bounds the graceful drain on SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := schemagengin.NewServer(deps.Logger)
	srv.Addr = c.Addr
	srv.Service = deps.Service
	srv.Templates = deps.Templates

	if err := srv.Open(); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stderr, "Listening on %s\n", c.Addr)

	ctx, stop := signal.NotifyContext(deps.Ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Close(shutdownCtx)
}
