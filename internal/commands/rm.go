package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct{}

func (c *RmCmd) Name() string          { return "rm" }
func (c *RmCmd) Aliases() []string     { return []string{"delete"} }
func (c *RmCmd) Synopsis() string      { return "Delete a task" }
func (c *RmCmd) Usage() string         { return "todo rm <number>" }
func (c *RmCmd) Access() routes.Access { return routes.AccessProtected }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	task, err := resolveTask(ctx, env.Tasks, args)
	if err != nil {
		return failResolve(env, errOut, err)
	}

	if err := env.Tasks.Delete(ctx, task.ID); err != nil {
		return fail(env, errOut, err)
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "deleted: %s\n", task.Title)
	}
	return exitcode.Success
}
