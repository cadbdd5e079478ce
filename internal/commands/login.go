package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	password string
	stdin    io.Reader
}

// SetStdin overrides the password input source (for testing).
func (c *LoginCmd) SetStdin(r io.Reader) {
	c.stdin = r
}

func (c *LoginCmd) Name() string          { return "login" }
func (c *LoginCmd) Aliases() []string     { return nil }
func (c *LoginCmd) Synopsis() string      { return "Authenticate and store the session credential" }
func (c *LoginCmd) Usage() string         { return "todo login [--password <secret>] <username>" }
func (c *LoginCmd) Access() routes.Access { return routes.AccessPublicOnly }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: username required")
		return exitcode.UserError
	}
	username := args[0]

	password := c.password
	if password == "" {
		in := c.stdin
		if in == nil {
			in = os.Stdin
		}
		var err error
		password, err = promptSecret(in, errOut, "password")
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
	}
	if password == "" {
		fmt.Fprintln(errOut, "error: password required")
		return exitcode.UserError
	}

	result, err := env.Session.Login(ctx, username, password)
	if err != nil {
		return fail(env, errOut, err)
	}
	if result.Declined {
		fmt.Fprintln(errOut, "error: invalid credentials")
		return exitcode.AuthError
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "logged in as %s\n", username)
	}
	return exitcode.Success
}
