// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/SyedZohaibTech/hackathon-todo/internal/taskstore"
)

// FormatTask formats a task line.
// Format: "{N:>4}  [{x| }]  {TITLE}\n" (4-wide right-aligned number,
// completion marker, title). Provisional entries carry a trailing
// marker until the server confirms them.
func FormatTask(w io.Writer, num int, entry taskstore.Entry) {
	marker := " "
	if entry.Completed {
		marker = "x"
	}
	title := normalizeTitle(entry.Title)
	if entry.Provisional {
		title += " (saving...)"
	}
	fmt.Fprintf(w, "%4d  [%s]  %s\n", num, marker, title)
}

// FormatTaskDetail formats a task with its description and timestamp,
// used after create/edit to show the canonical server record.
func FormatTaskDetail(w io.Writer, entry taskstore.Entry) {
	fmt.Fprintf(w, "id: %s\n", entry.ID)
	fmt.Fprintf(w, "title: %s\n", normalizeTitle(entry.Title))
	if entry.Description != "" {
		fmt.Fprintf(w, "description: %s\n", normalizeTitle(entry.Description))
	}
	fmt.Fprintf(w, "completed: %t\n", entry.Completed)
	if !entry.CreatedAt.IsZero() {
		fmt.Fprintf(w, "created: %s\n", entry.CreatedAt.Format("2006-01-02 15:04"))
	}
}

// normalizeTitle normalizes a title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
