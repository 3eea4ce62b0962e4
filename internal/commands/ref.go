package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"todo/internal/service"
	"todo/internal/tasks"
)

// ErrRefRequired indicates no task number was provided.
var ErrRefRequired = errors.New("task number required")

// ParseRef parses a 1-based task number from args. The number refers
// to the task's position in the current list output (newest first).
func ParseRef(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrRefRequired
	}
	ref := args[0]
	if !isAllDigits(ref) {
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}
	num, err := strconv.Atoi(ref)
	if err != nil || num < 1 {
		return 0, fmt.Errorf("invalid task number: %s", ref)
	}
	return num, nil
}

// resolveRef refreshes the store and returns the task at the given
// 1-based position.
func resolveRef(ctx context.Context, store *tasks.Store, num int) (service.Task, error) {
	if err := store.Refresh(ctx); err != nil {
		return service.Task{}, err
	}
	list := store.Tasks()
	if num < 1 || num > len(list) {
		return service.Task{}, fmt.Errorf("task number out of range: %d", num)
	}
	return list[num-1], nil
}

// isAllDigits returns true if s consists only of ASCII digits and is
// non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
