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
	Register(&StatusCmd{})
}

// StatusCmd reports whether a session credential is present. It never
// contacts the server; a stale credential is only discovered when the
// next authenticated call fails.
type StatusCmd struct{}

func (c *StatusCmd) Name() string          { return "status" }
func (c *StatusCmd) Aliases() []string     { return []string{"whoami"} }
func (c *StatusCmd) Synopsis() string      { return "Show session state" }
func (c *StatusCmd) Usage() string         { return "todo status" }
func (c *StatusCmd) Access() routes.Access { return routes.AccessOpen }

func (c *StatusCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *StatusCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if env.Session.IsAuthenticated() {
		fmt.Fprintln(out, "logged in")
	} else {
		fmt.Fprintln(out, "not logged in")
	}
	return exitcode.Success
}
