// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
)

// FakeAPI is an in-memory implementation of remote.API for testing.
//
// Error injection: the *Err fields, when set, are returned by the
// corresponding method. The *Hook fields, when set, run before the
// method body and may both gate (block on a channel) and inject an
// error per call; they make overlapping in-flight operations
// controllable from tests.
type FakeAPI struct {
	mu    sync.Mutex
	seq   int
	tasks []remote.Task
	users map[string]fakeUser // username -> user

	LoginErr    error
	RegisterErr error
	ListErr     error
	CreateErr   error
	UpdateErr   error
	ToggleErr   error
	DeleteErr   error
	ChatErr     error

	CreateHook func(title string) error
	ToggleHook func(id string) error
	DeleteHook func(id string) error
	UpdateHook func(id string) error

	ChatResponse string
}

type fakeUser struct {
	email    string
	password string
}

// NewFakeAPI creates an empty FakeAPI.
func NewFakeAPI() *FakeAPI {
	return &FakeAPI{users: make(map[string]fakeUser)}
}

// AddUser registers an account directly.
func (f *FakeAPI) AddUser(username, email, password string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[username] = fakeUser{email: email, password: password}
}

// AddTask seeds a task and returns its id.
func (f *FakeAPI) AddTask(title, description string, completed bool) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	id := fmt.Sprintf("%d", f.seq)
	f.tasks = append(f.tasks, remote.Task{
		ID:          id,
		Title:       title,
		Description: description,
		Completed:   completed,
	})
	return id
}

// Task returns the stored task with the given id.
func (f *FakeAPI) Task(id string) (remote.Task, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return remote.Task{}, false
}

// TaskCount returns the number of stored tasks.
func (f *FakeAPI) TaskCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tasks)
}

// Login implements remote.API.
func (f *FakeAPI) Login(ctx context.Context, username, password string) (string, error) {
	if f.LoginErr != nil {
		return "", f.LoginErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[username]
	if !ok || user.password != password {
		return "", &remote.AuthError{Status: 401, Detail: "Incorrect username or password"}
	}
	return "token-" + username, nil
}

// Register implements remote.API.
func (f *FakeAPI) Register(ctx context.Context, reg remote.Registration) error {
	if f.RegisterErr != nil {
		return f.RegisterErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.users[reg.Username]; exists {
		return &remote.ValidationError{Detail: "Username already registered"}
	}
	for _, u := range f.users {
		if strings.EqualFold(u.email, reg.Email) {
			return &remote.ValidationError{Detail: "Email already registered"}
		}
	}
	f.users[reg.Username] = fakeUser{email: reg.Email, password: reg.Password}
	return nil
}

// ListTasks implements remote.API.
func (f *FakeAPI) ListTasks(ctx context.Context) ([]remote.Task, error) {
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make([]remote.Task, len(f.tasks))
	copy(result, f.tasks)
	return result, nil
}

// CreateTask implements remote.API.
func (f *FakeAPI) CreateTask(ctx context.Context, title, description string) (remote.Task, error) {
	if f.CreateHook != nil {
		if err := f.CreateHook(title); err != nil {
			return remote.Task{}, err
		}
	}
	if f.CreateErr != nil {
		return remote.Task{}, f.CreateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	task := remote.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
	}
	f.tasks = append(f.tasks, task)
	return task, nil
}

// UpdateTask implements remote.API.
func (f *FakeAPI) UpdateTask(ctx context.Context, id string, changes remote.TaskChanges) (remote.Task, error) {
	if f.UpdateHook != nil {
		if err := f.UpdateHook(id); err != nil {
			return remote.Task{}, err
		}
	}
	if f.UpdateErr != nil {
		return remote.Task{}, f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if changes.Title != nil {
				f.tasks[i].Title = *changes.Title
			}
			if changes.Description != nil {
				f.tasks[i].Description = *changes.Description
			}
			return f.tasks[i], nil
		}
	}
	return remote.Task{}, &remote.NotFoundError{Path: "/tasks/" + id + "/"}
}

// ToggleComplete implements remote.API.
func (f *FakeAPI) ToggleComplete(ctx context.Context, id string) (remote.Task, error) {
	if f.ToggleHook != nil {
		if err := f.ToggleHook(id); err != nil {
			return remote.Task{}, err
		}
	}
	if f.ToggleErr != nil {
		return remote.Task{}, f.ToggleErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks[i].Completed = !f.tasks[i].Completed
			return f.tasks[i], nil
		}
	}
	return remote.Task{}, &remote.NotFoundError{Path: "/tasks/" + id + "/complete/"}
}

// DeleteTask implements remote.API.
func (f *FakeAPI) DeleteTask(ctx context.Context, id string) error {
	if f.DeleteHook != nil {
		if err := f.DeleteHook(id); err != nil {
			return err
		}
	}
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return &remote.NotFoundError{Path: "/tasks/" + id + "/"}
}

// Chat implements remote.API.
func (f *FakeAPI) Chat(ctx context.Context, message string) (string, error) {
	if f.ChatErr != nil {
		return "", f.ChatErr
	}
	if f.ChatResponse != "" {
		return f.ChatResponse, nil
	}
	return "ok: " + message, nil
}
