package remote

import "time"

// Task represents a single task record as the server stores it.
type Task struct {
	ID          string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time // zero if the server omitted it
}

// Registration holds the fields for account creation.
// FirstName and LastName are optional profile fields.
type Registration struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// TaskChanges describes a partial task update.
// Nil fields are left unchanged.
type TaskChanges struct {
	Title       *string
	Description *string
}
