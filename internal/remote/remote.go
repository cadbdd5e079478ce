// Package remote defines the backend-agnostic interface for the hosted
// todo API, plus the error taxonomy every caller classifies against.
package remote

import "context"

// API defines the interface for remote todo operations.
// All HTTP calls go through this interface. Commands and the task
// store never build requests directly.
type API interface {
	// Login authenticates and returns the bearer credential.
	// Bad credentials surface as *AuthError.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates a new account. Duplicate username/email
	// surfaces as *ValidationError with the server's detail message.
	Register(ctx context.Context, reg Registration) error

	// ListTasks returns the full task collection for the current user.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task and returns the canonical server record.
	CreateTask(ctx context.Context, title, description string) (Task, error)

	// UpdateTask applies a partial update and returns the updated record.
	UpdateTask(ctx context.Context, id string, changes TaskChanges) (Task, error)

	// ToggleComplete flips the completion state server-side and
	// returns the updated record.
	ToggleComplete(ctx context.Context, id string) (Task, error)

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id string) error

	// Chat sends a natural-language message and returns the response
	// text verbatim. The client does not interpret it.
	Chat(ctx context.Context, message string) (string, error)
}
