package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/SyedZohaibTech/hackathon-todo/internal/commands"
	"github.com/SyedZohaibTech/hackathon-todo/internal/config"
	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
	"github.com/SyedZohaibTech/hackathon-todo/internal/session"
	"github.com/SyedZohaibTech/hackathon-todo/internal/taskstore"
)

// APIFactory creates the remote API from config and credential store.
// Used to inject the backend during dispatch (tests inject a fake).
type APIFactory func(ctx context.Context, cfg *config.Config, creds *session.Store) (remote.API, error)

// Dispatcher handles command-line parsing, route gating, and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  APIFactory
}

// NewDispatcher creates a new dispatcher with the given registry and
// API factory.
func NewDispatcher(registry *commands.Registry, factory APIFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> dispatch to "list" command with no args
	if len(args) == 0 {
		return d.dispatch(ctx, routes.HomeRoute, nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	// Common flags
	var configDir string
	var apiURL string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.StringVar(&apiURL, "api", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	// Register command-specific flags
	cmd.RegisterFlags(fs)

	// Parse flags
	if err := fs.Parse(args); err != nil {
		return flagError(errOut, err)
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positionalArgs := fs.Args()
	if len(positionalArgs) > 0 && strings.HasPrefix(positionalArgs[0], "-") {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positionalArgs[0])
		return exitcode.UserError
	}

	// Create config
	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.UserError
	}
	cfg.Quiet = quiet
	cfg.Debug = debug
	if apiURL != "" {
		cfg.BaseURL = strings.TrimRight(apiURL, "/")
	}

	// Wire the session over the credential store, then the API.
	creds := session.NewStore(cfg.TokenPath())
	api, err := d.factory(ctx, cfg, creds)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.BackendError
	}
	sess := session.NewManager(creds, api)

	// The guard runs before any data fetch; a protected command only
	// ever sees an authenticated context.
	guard := routes.NewGuard(sess)
	decision := guard.Decide(cmd.Name(), cmd.Access())
	if !decision.Allow {
		switch decision.RedirectTo {
		case routes.LoginRoute:
			fmt.Fprintf(errOut, "error: not logged in (run: todo login <username>, then: todo %s)\n", decision.Target)
			return exitcode.AuthError
		case routes.HomeRoute:
			if !cfg.Quiet {
				fmt.Fprintln(out, "already logged in")
			}
			// Redirect keeps the wiring built from the parsed flags.
			home, ok := d.registry.Find(routes.HomeRoute)
			if !ok {
				fmt.Fprintf(errOut, "error: unknown command: %s\n", routes.HomeRoute)
				return exitcode.UserError
			}
			return d.runCommand(ctx, home, cfg, api, sess, nil, out, errOut)
		}
	}

	return d.runCommand(ctx, cmd, cfg, api, sess, positionalArgs, out, errOut)
}

// runCommand builds the command Env and executes it. Protected
// commands additionally get a task store whose failure hook expires
// the session.
func (d *Dispatcher) runCommand(ctx context.Context, cmd commands.Command, cfg *config.Config, api remote.API, sess *session.Manager, args []string, out, errOut io.Writer) int {
	env := &commands.Env{
		Config:  cfg,
		Session: sess,
		API:     api,
	}
	if cmd.Access() == routes.AccessProtected {
		env.Tasks = taskstore.New(api, taskstore.WithAuthFailureHook(func(err error) {
			sess.Expire(err)
		}))
		defer env.Tasks.Close()
	}

	return cmd.Run(ctx, env, args, out, errOut)
}

// flagError shapes flag-parsing failures into the CLI's error output.
func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	// Check for missing flag value
	if strings.Contains(errStr, "needs a value") || strings.Contains(errStr, "flag needs an argument") {
		parts := strings.Split(errStr, ":")
		if len(parts) > 0 {
			flagPart := strings.TrimSpace(parts[0])
			flagPart = strings.TrimPrefix(flagPart, "flag ")
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return exitcode.UserError
		}
	}

	// Check for unknown flag
	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
