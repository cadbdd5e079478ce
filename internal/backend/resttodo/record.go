package resttodo

import (
	"time"

	"github.com/SyedZohaibTech/hackathon-todo/internal/remote"
)

// taskRecord is the wire shape of a task as the server sends it.
type taskRecord struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"created_at"`
}

func (r taskRecord) task() remote.Task {
	return remote.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Completed:   r.Completed,
		CreatedAt:   parseTimestamp(r.CreatedAt),
	}
}

// timestampLayouts covers the formats the server has been seen to emit:
// RFC 3339 with or without a zone offset, with or without fractional
// seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// parseTimestamp parses the server's created_at value. Returns the
// zero time if the field is absent or unparseable; display treats
// that as "no timestamp".
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
