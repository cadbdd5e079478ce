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
	Register(&DoneCmd{})
}

// DoneCmd implements the done command: toggles completion of the task
// at the given list number.
type DoneCmd struct{}

func (c *DoneCmd) Name() string          { return "done" }
func (c *DoneCmd) Aliases() []string     { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string      { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string         { return "todo done <number>" }
func (c *DoneCmd) Access() routes.Access { return routes.AccessProtected }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	task, err := resolveTask(ctx, env.Tasks, args)
	if err != nil {
		return failResolve(env, errOut, err)
	}

	entry, err := env.Tasks.Toggle(ctx, task.ID)
	if err != nil {
		return fail(env, errOut, err)
	}

	if !env.Config.Quiet {
		if entry.Completed {
			fmt.Fprintf(out, "done: %s\n", entry.Title)
		} else {
			fmt.Fprintf(out, "reopened: %s\n", entry.Title)
		}
	}
	return exitcode.Success
}
