package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/output"
	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command: partial update of title and/or
// description for the task at the given list number.
type EditCmd struct {
	title       string
	description string
	titleSet    bool
	descSet     bool
}

func (c *EditCmd) Name() string          { return "edit" }
func (c *EditCmd) Aliases() []string     { return nil }
func (c *EditCmd) Synopsis() string      { return "Edit a task's title or description" }
func (c *EditCmd) Usage() string         { return "todo edit [--title <text>] [--desc <text>] <number>" }
func (c *EditCmd) Access() routes.Access { return routes.AccessProtected }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.Func("title", "", func(v string) error {
		c.title = v
		c.titleSet = true
		return nil
	})
	fs.Func("desc", "", func(v string) error {
		c.description = v
		c.descSet = true
		return nil
	})
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if !c.titleSet && !c.descSet {
		fmt.Fprintln(errOut, "error: nothing to change (use --title or --desc)")
		return exitcode.UserError
	}

	task, err := resolveTask(ctx, env.Tasks, args)
	if err != nil {
		return failResolve(env, errOut, err)
	}

	var changes remote.TaskChanges
	if c.titleSet {
		changes.Title = &c.title
	}
	if c.descSet {
		changes.Description = &c.description
	}

	entry, err := env.Tasks.Update(ctx, task.ID, changes)
	if err != nil {
		return fail(env, errOut, err)
	}

	if !env.Config.Quiet {
		output.FormatTaskDetail(out, entry)
	}
	return exitcode.Success
}
