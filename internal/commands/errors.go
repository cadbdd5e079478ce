package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
	"github.com/SyedZohaibTech/hackathon-todo/internal/taskstore"
)

// fail renders a remote or store failure and returns the exit code.
// Authorization failures additionally clear the session through the
// manager's single expiry hook and report the login redirect.
func fail(env *Env, errOut io.Writer, err error) int {
	if env.Session != nil && env.Session.Expire(err) {
		fmt.Fprintln(errOut, "error: session expired (run: todo login <username>)")
		return exitcode.AuthError
	}

	switch {
	case remote.IsAuth(err):
		fmt.Fprintln(errOut, "error: not authorized (run: todo login <username>)")
		return exitcode.AuthError
	case remote.IsValidation(err):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case remote.IsNotFound(err):
		fmt.Fprintln(errOut, "error: task not found on server")
		return exitcode.UserError
	case remote.IsNetwork(err):
		fmt.Fprintln(errOut, "error: service unreachable")
		return exitcode.BackendError
	case remote.IsServer(err):
		fmt.Fprintln(errOut, "error: server error, try again later")
		return exitcode.BackendError
	case isUserInput(err):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}
}

// failResolve renders a task-number resolution failure. Load errors
// keep their remote classification; everything else (bad or
// out-of-range numbers) is a user error.
func failResolve(env *Env, errOut io.Writer, err error) int {
	if isRemote(err) {
		return fail(env, errOut, err)
	}
	fmt.Fprintf(errOut, "error: %v\n", err)
	return exitcode.UserError
}

// isRemote reports whether err carries a remote classification.
func isRemote(err error) bool {
	return remote.IsAuth(err) || remote.IsValidation(err) ||
		remote.IsNotFound(err) || remote.IsNetwork(err) || remote.IsServer(err)
}

// isUserInput reports whether err is a local validation failure.
func isUserInput(err error) bool {
	return errors.Is(err, taskstore.ErrTitleRequired) ||
		errors.Is(err, taskstore.ErrTitleTooLong) ||
		errors.Is(err, taskstore.ErrDescriptionTooLong) ||
		errors.Is(err, taskstore.ErrUnknownTask)
}
