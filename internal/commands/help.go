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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string          { return "help" }
func (c *HelpCmd) Aliases() []string     { return nil }
func (c *HelpCmd) Synopsis() string      { return "Print usage" }
func (c *HelpCmd) Usage() string         { return "todo help" }
func (c *HelpCmd) Access() routes.Access { return routes.AccessOpen }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                        List open tasks
  todo list [common flags] [--all]            List tasks (--all includes completed)
  todo add [common flags] [--desc <text>] <title...>
  todo done [common flags] <number>
  todo edit [common flags] [--title <text>] [--desc <text>] <number>
  todo rm [common flags] <number>
  todo chat [common flags] <message...>
  todo register --email <email> [--first <name>] [--last <name>] <username>
  todo login [--password <secret>] <username>
  todo logout [common flags]
  todo status
  todo help
  todo version

Common flags:
  --config <dir>   Override config directory
  --api <url>      Override API base URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
