package commands_test

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SyedZohaibTech/hackathon-todo/internal/commands"
	"github.com/SyedZohaibTech/hackathon-todo/internal/config"
	"github.com/SyedZohaibTech/hackathon-todo/internal/exitcode"
	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
	"github.com/SyedZohaibTech/hackathon-todo/internal/session"
	"github.com/SyedZohaibTech/hackathon-todo/internal/taskstore"
	"github.com/SyedZohaibTech/hackathon-todo/internal/testutil"
)

// newTestEnv builds a command Env over a FakeAPI with a temp-dir
// credential store. The returned store lets tests seed or inspect the
// session credential directly.
func newTestEnv(t *testing.T, api *testutil.FakeAPI, quiet bool) (*commands.Env, *session.Store) {
	t.Helper()

	dir := t.TempDir()
	store := session.NewStore(filepath.Join(dir, config.TokenFile))
	env := &commands.Env{
		Config:  &config.Config{Dir: dir, Quiet: quiet},
		Session: session.NewManager(store, api),
		API:     api,
		Tasks:   taskstore.New(api),
	}
	return env, store
}

// runCommand parses argv through the command's flags and runs it,
// mirroring what the dispatcher does.
func runCommand(t *testing.T, cmd commands.Command, env *commands.Env, argv []string) (stdout, stderr string, code int) {
	t.Helper()

	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	cmd.RegisterFlags(fs)
	if err := fs.Parse(argv); err != nil {
		t.Fatalf("flag parse failed: %v", err)
	}

	var outBuf, errBuf bytes.Buffer
	code = cmd.Run(context.Background(), env, fs.Args(), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	env, _ := newTestEnv(t, testutil.NewFakeAPI(), false)

	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo "+commands.Version+"\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	env, _ := newTestEnv(t, testutil.NewFakeAPI(), false)

	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
	if !strings.Contains(stdout, "todo chat") {
		t.Error("help output should list the chat command")
	}
	testutil.Golden(t, "help", stdout)
}

// Tests for status command
func TestStatusCommand(t *testing.T) {
	env, store := newTestEnv(t, testutil.NewFakeAPI(), false)

	stdout, _, code := runCommand(t, &commands.StatusCmd{}, env, nil)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "not logged in\n" {
		t.Errorf("expected not logged in, got %q", stdout)
	}

	if err := store.Save("tok"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	stdout, _, code = runCommand(t, &commands.StatusCmd{}, env, nil)
	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "logged in\n" {
		t.Errorf("expected logged in, got %q", stdout)
	}
}

// Tests for list command
func TestListCommand_SkipsCompletedByDefault(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.AddTask("Buy milk", "", false)
	api.AddTask("Old chore", "", true)
	api.AddTask("Write report", "", false)
	env, _ := newTestEnv(t, api, false)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	// Completed tasks keep their number but are not printed.
	expected := "   1  [ ]  Buy milk\n   3  [ ]  Write report\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_AllIncludesCompleted(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.AddTask("Buy milk", "", false)
	api.AddTask("Old chore", "", true)
	env, _ := newTestEnv(t, api, false)

	stdout, _, code := runCommand(t, &commands.ListCmd{}, env, []string{"--all"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  [ ]  Buy milk\n   2  [x]  Old chore\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	env, _ := newTestEnv(t, testutil.NewFakeAPI(), false)

	stdout, _, code := runCommand(t, &commands.ListCmd{}, env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks\n" {
		t.Errorf("expected 'no tasks', got %q", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	env, _ := newTestEnv(t, testutil.NewFakeAPI(), true)

	stdout, _, code := runCommand(t, &commands.ListCmd{}, env, nil)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_NetworkFailure(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.ListErr = &remote.NetworkError{Err: context.DeadlineExceeded}
	env, _ := newTestEnv(t, api, false)

	_, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.Contains(stderr, "service unreachable") {
		t.Errorf("expected unreachable message, got %q", stderr)
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	api := testutil.NewFakeAPI()
	env, _ := newTestEnv(t, api, false)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, env, []string{"Buy", "milk"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "title: Buy milk") {
		t.Errorf("expected task detail, got %q", stdout)
	}
	if api.TaskCount() != 1 {
		t.Errorf("expected 1 task on server, got %d", api.TaskCount())
	}
}

func TestAddCommand_WithDescription(t *testing.T) {
	api := testutil.NewFakeAPI()
	env, _ := newTestEnv(t, api, false)

	stdout, _, code := runCommand(t, &commands.AddCmd{}, env, []string{"--desc", "2 liters", "Buy milk"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "description: 2 liters") {
		t.Errorf("expected description in detail, got %q", stdout)
	}
}

func TestAddCommand_NoTitle(t *testing.T) {
	env, _ := newTestEnv(t, testutil.NewFakeAPI(), false)

	_, stderr, code := runCommand(t, &commands.AddCmd{}, env, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "title required") {
		t.Errorf("expected title required error, got %q", stderr)
	}
}

func TestAddCommand_TitleTooLong(t *testing.T) {
	api := testutil.NewFakeAPI()
	env, _ := newTestEnv(t, api, false)

	long := strings.Repeat("x", taskstore.MaxTitleLen+1)
	_, stderr, code := runCommand(t, &commands.AddCmd{}, env, []string{long})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "title") {
		t.Errorf("expected title length error, got %q", stderr)
	}
	if api.TaskCount() != 0 {
		t.Error("rejected title must not reach the server")
	}
}

// Tests for done command
func TestDoneCommand(t *testing.T) {
	api := testutil.NewFakeAPI()
	id := api.AddTask("Buy milk", "", false)
	env, _ := newTestEnv(t, api, false)

	stdout, _, code := runCommand(t, &commands.DoneCmd{}, env, []string{"1"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "done: Buy milk\n" {
		t.Errorf("expected done message, got %q", stdout)
	}
	task, _ := api.Task(id)
	if !task.Completed {
		t.Error("expected task completed on server")
	}
}

func TestDoneCommand_Reopen(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.AddTask("Buy milk", "", true)
	env, _ := newTestEnv(t, api, false)

	stdout, _, code := runCommand(t, &commands.DoneCmd{}, env, []string{"1"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "reopened: Buy milk\n" {
		t.Errorf("expected reopened message, got %q", stdout)
	}
}

func TestDoneCommand_BadNumber(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.AddTask("Buy milk", "", false)
	env, _ := newTestEnv(t, api, false)

	for _, arg := range []string{"abc", "0", "9"} {
		_, stderr, code := runCommand(t, &commands.DoneCmd{}, env, []string{arg})
		if code != exitcode.UserError {
			t.Errorf("arg %q: expected exit code %d, got %d", arg, exitcode.UserError, code)
		}
		if stderr == "" {
			t.Errorf("arg %q: expected error output", arg)
		}
	}
}

func TestDoneCommand_NoNumber(t *testing.T) {
	env, _ := newTestEnv(t, testutil.NewFakeAPI(), false)

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, env, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "task number required") {
		t.Errorf("expected number required error, got %q", stderr)
	}
}

// Tests for edit command
func TestEditCommand_Title(t *testing.T) {
	api := testutil.NewFakeAPI()
	id := api.AddTask("Old title", "keep", false)
	env, _ := newTestEnv(t, api, false)

	stdout, _, code := runCommand(t, &commands.EditCmd{}, env, []string{"--title", "New title", "1"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "title: New title") {
		t.Errorf("expected updated detail, got %q", stdout)
	}
	task, _ := api.Task(id)
	if task.Title != "New title" || task.Description != "keep" {
		t.Errorf("unexpected server record: %+v", task)
	}
}

func TestEditCommand_ClearDescription(t *testing.T) {
	api := testutil.NewFakeAPI()
	id := api.AddTask("Title", "old", false)
	env, _ := newTestEnv(t, api, false)

	_, _, code := runCommand(t, &commands.EditCmd{}, env, []string{"--desc", "", "1"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	task, _ := api.Task(id)
	if task.Description != "" {
		t.Errorf("expected cleared description, got %q", task.Description)
	}
}

func TestEditCommand_NothingToChange(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.AddTask("Title", "", false)
	env, _ := newTestEnv(t, api, false)

	_, stderr, code := runCommand(t, &commands.EditCmd{}, env, []string{"1"})

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "nothing to change") {
		t.Errorf("expected nothing-to-change error, got %q", stderr)
	}
}

// Tests for rm command
func TestRmCommand(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.AddTask("Buy milk", "", false)
	env, _ := newTestEnv(t, api, false)

	stdout, _, code := runCommand(t, &commands.RmCmd{}, env, []string{"1"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "deleted: Buy milk\n" {
		t.Errorf("expected deleted message, got %q", stdout)
	}
	if api.TaskCount() != 0 {
		t.Errorf("expected 0 tasks on server, got %d", api.TaskCount())
	}
}

// Tests for chat command
func TestChatCommand(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.ChatResponse = "Added a task to buy milk."
	env, _ := newTestEnv(t, api, false)

	stdout, _, code := runCommand(t, &commands.ChatCmd{}, env, []string{"add", "a", "task"})

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "Added a task to buy milk.\n" {
		t.Errorf("expected chat response, got %q", stdout)
	}
}

func TestChatCommand_NoMessage(t *testing.T) {
	env, _ := newTestEnv(t, testutil.NewFakeAPI(), false)

	_, stderr, code := runCommand(t, &commands.ChatCmd{}, env, nil)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if !strings.Contains(stderr, "message required") {
		t.Errorf("expected message required error, got %q", stderr)
	}
}

// An authorization failure during a command clears the session and
// reports the login redirect.
func TestAuthFailureExpiresSession(t *testing.T) {
	api := testutil.NewFakeAPI()
	api.ListErr = &remote.AuthError{Status: 401, Detail: "Not authenticated"}
	env, store := newTestEnv(t, api, false)
	if err := store.Save("stale"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	_, stderr, code := runCommand(t, &commands.ListCmd{}, env, nil)

	if code != exitcode.AuthError {
		t.Errorf("expected exit code %d, got %d", exitcode.AuthError, code)
	}
	if !strings.Contains(stderr, "session expired") {
		t.Errorf("expected session expired message, got %q", stderr)
	}
	if store.Present() {
		t.Error("expected credential cleared after auth failure")
	}
}
