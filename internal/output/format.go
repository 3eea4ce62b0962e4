// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

// FormatTask formats one task line.
// Format: "{N:>4}  [x] {TITLE}\n" with a space in the box for pending
// tasks, followed by an indented description line when one exists.
func FormatTask(w io.Writer, num int, task service.Task) {
	box := " "
	if task.Completed {
		box = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, box, normalizeTitle(task.Title))
	if desc := strings.TrimSpace(task.Description); desc != "" {
		fmt.Fprintf(w, "          %s\n", normalizeTitle(desc))
	}
}

// FormatStats formats the summary line printed after a task listing.
func FormatStats(w io.Writer, total, completed, pending int) {
	if total == 0 {
		return
	}
	pct := completed * 100 / total
	fmt.Fprintf(w, "%d tasks: %d done, %d pending (%d%%)\n", total, completed, pending, pct)
}

// FormatUser formats the profile for whoami output.
func FormatUser(w io.Writer, user service.User) {
	fmt.Fprintf(w, "email: %s\n", user.Email)
	if user.Name != "" {
		fmt.Fprintf(w, "name: %s\n", user.Name)
	}
	fmt.Fprintf(w, "theme: %s\n", user.ThemePreference)
	if user.CreatedAt != "" {
		fmt.Fprintf(w, "created: %s\n", user.CreatedAt)
	}
}

// normalizeTitle normalizes text for single-line display.
// Empty or whitespace-only text becomes "(untitled)"; newlines are
// replaced with spaces.
func normalizeTitle(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(untitled)"
	}
	return s
}
