package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SyedZohaibTech/hackathon-todo/internal/taskstore"
)

// ErrTaskNumberRequired indicates no task number was provided.
var ErrTaskNumberRequired = errors.New("task number required")

// resolveTask loads the collection and resolves a 1-based task number
// (as printed by `todo list`) to its cached entry.
func resolveTask(ctx context.Context, store *taskstore.Store, args []string) (taskstore.Entry, error) {
	if len(args) == 0 {
		return taskstore.Entry{}, ErrTaskNumberRequired
	}

	num, err := strconv.Atoi(args[0])
	if err != nil || num < 1 {
		return taskstore.Entry{}, fmt.Errorf("invalid task number: %s", args[0])
	}

	if err := store.Load(ctx); err != nil {
		return taskstore.Entry{}, err
	}

	tasks := store.Tasks()
	if num > len(tasks) {
		return taskstore.Entry{}, fmt.Errorf("task number out of range: %d", num)
	}
	return tasks[num-1], nil
}
