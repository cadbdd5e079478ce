// Package resttodo implements the remote.API interface against the
// hosted todo REST API.
package resttodo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
)

const (
	// APIPrefix is the versioned path prefix of the hosted API.
	APIPrefix = "/api/v1"

	// APITimeout is the timeout for API calls.
	APITimeout = 10 * time.Second
)

// CredentialSource supplies the current bearer credential, if any.
// The session store satisfies this.
type CredentialSource interface {
	Credential() (string, bool)
}

// Client implements remote.API over HTTP. It attaches the credential,
// serializes bodies as JSON, and classifies failures in one place; it
// never clears sessions itself.
type Client struct {
	base  *url.URL
	creds CredentialSource
	http  *http.Client
	debug io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client (for testing).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithDebug enables request tracing to w.
func WithDebug(w io.Writer) Option {
	return func(c *Client) { c.debug = w }
}

// New creates a Client for the given base origin.
func New(baseURL string, creds CredentialSource, opts ...Option) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	c := &Client{
		base:  base,
		creds: creds,
		http:  &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Login implements remote.API.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body := map[string]string{
		"username": username,
		"password": password,
	}
	var resp struct {
		AccessToken string `json:"access_token"`
	}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", &remote.ServerError{Status: http.StatusOK, Detail: "login response missing access_token"}
	}
	return resp.AccessToken, nil
}

// Register implements remote.API.
func (c *Client) Register(ctx context.Context, reg remote.Registration) error {
	body := map[string]string{
		"username": reg.Username,
		"email":    reg.Email,
		"password": reg.Password,
	}
	if reg.FirstName != "" {
		body["first_name"] = reg.FirstName
	}
	if reg.LastName != "" {
		body["last_name"] = reg.LastName
	}
	return c.do(ctx, http.MethodPost, "/auth/register", body, nil)
}

// ListTasks implements remote.API.
func (c *Client) ListTasks(ctx context.Context) ([]remote.Task, error) {
	var records []taskRecord
	if err := c.do(ctx, http.MethodGet, "/tasks/", nil, &records); err != nil {
		return nil, err
	}
	tasks := make([]remote.Task, 0, len(records))
	for _, r := range records {
		tasks = append(tasks, r.task())
	}
	return tasks, nil
}

// CreateTask implements remote.API.
func (c *Client) CreateTask(ctx context.Context, title, description string) (remote.Task, error) {
	body := map[string]any{
		"title":       title,
		"description": description,
		"completed":   false,
	}
	var record taskRecord
	if err := c.do(ctx, http.MethodPost, "/tasks/", body, &record); err != nil {
		return remote.Task{}, err
	}
	return record.task(), nil
}

// UpdateTask implements remote.API.
func (c *Client) UpdateTask(ctx context.Context, id string, changes remote.TaskChanges) (remote.Task, error) {
	body := map[string]any{}
	if changes.Title != nil {
		body["title"] = *changes.Title
	}
	if changes.Description != nil {
		body["description"] = *changes.Description
	}
	var record taskRecord
	if err := c.do(ctx, http.MethodPut, "/tasks/"+url.PathEscape(id)+"/", body, &record); err != nil {
		return remote.Task{}, err
	}
	return record.task(), nil
}

// ToggleComplete implements remote.API.
func (c *Client) ToggleComplete(ctx context.Context, id string) (remote.Task, error) {
	var record taskRecord
	if err := c.do(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id)+"/complete/", nil, &record); err != nil {
		return remote.Task{}, err
	}
	return record.task(), nil
}

// DeleteTask implements remote.API.
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id)+"/", nil, nil)
}

// Chat implements remote.API.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	body := map[string]string{"message": message}
	var resp struct {
		Response string `json:"response"`
	}
	if err := c.do(ctx, http.MethodPost, "/chat/process", body, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}

// do performs one API call: serialize, attach credential, classify.
// Every failure path in the client funnels through here so all callers
// inherit identical failure semantics.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(data)
	}

	endpoint := c.base.String() + APIPrefix + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential, ok := c.creds.Credential(); ok {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	if c.debug != nil {
		fmt.Fprintf(c.debug, "debug: %s %s\n", method, endpoint)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &remote.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &remote.NetworkError{Err: err}
	}

	if c.debug != nil {
		fmt.Fprintf(c.debug, "debug: status %d (%d bytes)\n", resp.StatusCode, len(data))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classify(resp.StatusCode, path, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("invalid response body: %w", err)
		}
	}
	return nil
}

// classify maps a non-success status to the error taxonomy.
func classify(status int, path string, body []byte) error {
	detail := extractDetail(body)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &remote.AuthError{Status: status, Detail: detail}
	case status == http.StatusNotFound:
		return &remote.NotFoundError{Path: path}
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return &remote.ValidationError{Detail: detail}
	case status >= 500:
		return &remote.ServerError{Status: status, Detail: detail}
	default:
		return &remote.ServerError{Status: status, Detail: detail}
	}
}

// extractDetail pulls the server's error message from a FastAPI-style
// {"detail": ...} body. Detail may be a string or a structured list.
func extractDetail(body []byte) string {
	var wrapper struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &wrapper); err != nil || len(wrapper.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(wrapper.Detail, &s); err == nil {
		return s
	}
	return string(wrapper.Detail)
}
