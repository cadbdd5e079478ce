package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/output"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `todo` (no args) and `todo list`.
type ListCmd struct {
	all bool
}

func (c *ListCmd) Name() string          { return "list" }
func (c *ListCmd) Aliases() []string     { return []string{"ls"} }
func (c *ListCmd) Synopsis() string      { return "List tasks" }
func (c *ListCmd) Usage() string         { return "todo list [--all]" }
func (c *ListCmd) Access() routes.Access { return routes.AccessProtected }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.all, "all", false, "")
	fs.BoolVar(&c.all, "a", false, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if err := env.Tasks.Load(ctx); err != nil {
		return fail(env, errOut, err)
	}

	num := 0
	for _, entry := range env.Tasks.Tasks() {
		num++
		if !c.all && entry.Completed {
			continue
		}
		output.FormatTask(out, num, entry)
	}

	if num == 0 && !env.Config.Quiet {
		fmt.Fprintln(out, "no tasks")
	}
	return exitcode.Success
}
