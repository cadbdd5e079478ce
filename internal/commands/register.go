package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
	"github.com/SyedZohaibTech/hackathon-todo/internal/session"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command.
type RegisterCmd struct {
	email     string
	password  string
	firstName string
	lastName  string
	stdin     io.Reader
}

// SetStdin overrides the password input source (for testing).
func (c *RegisterCmd) SetStdin(r io.Reader) {
	c.stdin = r
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return []string{"signup"} }
func (c *RegisterCmd) Synopsis() string  { return "Create an account" }
func (c *RegisterCmd) Usage() string {
	return "todo register --email <email> [--first <name>] [--last <name>] <username>"
}
func (c *RegisterCmd) Access() routes.Access { return routes.AccessPublicOnly }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.firstName, "first", "", "")
	fs.StringVar(&c.lastName, "last", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: username required")
		return exitcode.UserError
	}
	if c.email == "" {
		fmt.Fprintln(errOut, "error: --email required")
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

	result, err := env.Session.Register(ctx, remote.Registration{
		Username:  username,
		Email:     c.email,
		Password:  password,
		FirstName: c.firstName,
		LastName:  c.lastName,
	})
	if err != nil {
		return fail(env, errOut, err)
	}
	if result.Declined {
		switch result.Cause {
		case session.CauseUsernameTaken:
			fmt.Fprintf(errOut, "error: username already taken: %s\n", username)
		case session.CauseEmailTaken:
			fmt.Fprintf(errOut, "error: email already taken: %s\n", c.email)
		default:
			fmt.Fprintf(errOut, "error: %s\n", result.Message)
		}
		return exitcode.UserError
	}

	if !env.Config.Quiet {
		fmt.Fprintf(out, "registered %s (run: todo login %s)\n", username, username)
	}
	return exitcode.Success
}
