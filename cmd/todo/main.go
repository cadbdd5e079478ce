// Package main is the entry point for the todo CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/SyedZohaibTech/hackathon-todo/internal/backend/resttodo"
	"github.com/SyedZohaibTech/hackathon-todo/internal/cli"
	"github.com/SyedZohaibTech/hackathon-todo/internal/commands"
	"github.com/SyedZohaibTech/hackathon-todo/internal/config"
	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
	"github.com/SyedZohaibTech/hackathon-todo/internal/session"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create API factory
	factory := func(ctx context.Context, cfg *config.Config, creds *session.Store) (remote.API, error) {
		var opts []resttodo.Option
		if cfg.Debug {
			opts = append(opts, resttodo.WithDebug(os.Stderr))
		}
		return resttodo.New(cfg.BaseURL, creds, opts...)
	}

	// Create dispatcher
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	// Run and exit with code
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
