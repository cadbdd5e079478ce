package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/routes"
)

func init() {
	Register(&ChatCmd{})
}

// ChatCmd sends a natural-language message to the chat endpoint and
// prints the response text verbatim. The endpoint is an opaque
// collaborator; nothing in its reply is interpreted.
type ChatCmd struct{}

func (c *ChatCmd) Name() string          { return "chat" }
func (c *ChatCmd) Aliases() []string     { return nil }
func (c *ChatCmd) Synopsis() string      { return "Send a message to the task assistant" }
func (c *ChatCmd) Usage() string         { return "todo chat <message...>" }
func (c *ChatCmd) Access() routes.Access { return routes.AccessProtected }

func (c *ChatCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ChatCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: message required")
		return exitcode.UserError
	}

	message := strings.Join(args, " ")
	response, err := env.API.Chat(ctx, message)
	if err != nil {
		return fail(env, errOut, err)
	}

	fmt.Fprintln(out, response)
	return exitcode.Success
}
