package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ServerTask is the wire shape served by the fake remote.
type ServerTask struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// FakeServer is an httptest-backed stand-in for the hosted todo API,
// speaking the same paths and FastAPI-style error bodies. Used to test
// the HTTP client's request shaping and error classification.
type FakeServer struct {
	*httptest.Server

	// Token is the bearer credential the server accepts.
	Token string

	// Username/Password are the accepted login credentials.
	Username string
	Password string

	// FailStatus, when non-zero, makes every request fail with that
	// status and FailDetail as the body detail.
	FailStatus int
	FailDetail string

	mu    sync.Mutex
	tasks []ServerTask
}

// NewFakeServer starts a fake remote accepting the given credentials.
// Callers must Close it.
func NewFakeServer(username, password, token string) *FakeServer {
	fs := &FakeServer{
		Token:    token,
		Username: username,
		Password: password,
	}

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", fs.handleLogin)
		r.Post("/auth/register", fs.handleRegister)
		r.Post("/chat/process", fs.authed(fs.handleChat))
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", fs.authed(fs.handleList))
			r.Post("/", fs.authed(fs.handleCreate))
			r.Put("/{id}/", fs.authed(fs.handleUpdate))
			r.Patch("/{id}/complete/", fs.authed(fs.handleToggle))
			r.Delete("/{id}/", fs.authed(fs.handleDelete))
		})
	})

	fs.Server = httptest.NewServer(r)
	return fs
}

// AddTask seeds a task and returns its id.
func (fs *FakeServer) AddTask(title, description string, completed bool) string {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	task := ServerTask{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Completed:   completed,
		CreatedAt:   "2024-01-15T10:30:00",
	}
	fs.tasks = append(fs.tasks, task)
	return task.ID
}

// Tasks returns a snapshot of the stored tasks.
func (fs *FakeServer) Tasks() []ServerTask {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	out := make([]ServerTask, len(fs.tasks))
	copy(out, fs.tasks)
	return out
}

func (fs *FakeServer) failing(w http.ResponseWriter) bool {
	if fs.FailStatus == 0 {
		return false
	}
	writeDetail(w, fs.FailStatus, fs.FailDetail)
	return true
}

func (fs *FakeServer) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+fs.Token {
			writeDetail(w, http.StatusUnauthorized, "Not authenticated")
			return
		}
		next(w, r)
	}
}

func (fs *FakeServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Username != fs.Username || body.Password != fs.Password {
		writeDetail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": fs.Token})
}

func (fs *FakeServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	var body struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	if body.Username == fs.Username {
		writeDetail(w, http.StatusBadRequest, "Username already registered")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"username": body.Username})
}

func (fs *FakeServer) handleList(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	fs.mu.Lock()
	defer fs.mu.Unlock()
	tasks := fs.tasks
	if tasks == nil {
		tasks = []ServerTask{}
	}
	writeJSON(w, http.StatusOK, tasks)
}

func (fs *FakeServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	var body struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Title == "" {
		writeDetail(w, http.StatusBadRequest, "title required")
		return
	}
	fs.mu.Lock()
	task := ServerTask{
		ID:          uuid.NewString(),
		Title:       body.Title,
		Description: body.Description,
		CreatedAt:   "2024-01-15T10:30:00",
	}
	fs.tasks = append(fs.tasks, task)
	fs.mu.Unlock()
	writeJSON(w, http.StatusCreated, task)
}

func (fs *FakeServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	var body struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	id := chi.URLParam(r, "id")
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i := range fs.tasks {
		if fs.tasks[i].ID == id {
			if body.Title != nil {
				fs.tasks[i].Title = *body.Title
			}
			if body.Description != nil {
				fs.tasks[i].Description = *body.Description
			}
			writeJSON(w, http.StatusOK, fs.tasks[i])
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Task not found")
}

func (fs *FakeServer) handleToggle(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	id := chi.URLParam(r, "id")
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i := range fs.tasks {
		if fs.tasks[i].ID == id {
			fs.tasks[i].Completed = !fs.tasks[i].Completed
			writeJSON(w, http.StatusOK, fs.tasks[i])
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Task not found")
}

func (fs *FakeServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	id := chi.URLParam(r, "id")
	fs.mu.Lock()
	defer fs.mu.Unlock()
	for i := range fs.tasks {
		if fs.tasks[i].ID == id {
			fs.tasks = append(fs.tasks[:i], fs.tasks[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeDetail(w, http.StatusNotFound, "Task not found")
}

func (fs *FakeServer) handleChat(w http.ResponseWriter, r *http.Request) {
	if fs.failing(w) {
		return
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"response": "received: " + body.Message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
