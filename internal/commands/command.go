// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/SyedZohaibTech/hackathon-todo/internal/config"
	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
	"github.com/SyedZohaibTech/hackathon-todo/internal/session"
	"github.com/SyedZohaibTech/hackathon-todo/internal/taskstore"
)

// Env carries the wired collaborators a command runs against.
// Tasks is nil unless the command is protected; the dispatcher only
// builds the task store once the route guard has admitted the command.
type Env struct {
	Config  *config.Config
	Session *session.Manager
	API     remote.API
	Tasks   *taskstore.Store
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// Access returns the command's route class. Protected commands
	// require a session, public-only commands require none, open
	// commands always run.
	Access() routes.Access

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command. args contains positional arguments
	// after flag parsing. Returns exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}
