package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/output"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.description = desc
}

func (c *AddCmd) Name() string          { return "add" }
func (c *AddCmd) Aliases() []string     { return []string{"create"} }
func (c *AddCmd) Synopsis() string      { return "Create a task" }
func (c *AddCmd) Usage() string         { return "todo add [--desc <text>] <title...>" }
func (c *AddCmd) Access() routes.Access { return routes.AccessProtected }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		fmt.Fprintln(errOut, "error: title required")
		return exitcode.UserError
	}

	entry, err := env.Tasks.Create(ctx, title, c.description)
	if err != nil {
		return fail(env, errOut, err)
	}

	if !env.Config.Quiet {
		output.FormatTaskDetail(out, entry)
	}
	return exitcode.Success
}
