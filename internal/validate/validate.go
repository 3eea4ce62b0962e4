// Package validate implements the client-side field checks performed
// before any network call.
package validate

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	// MaxTitleLen bounds task titles.
	MaxTitleLen = 200

	// MaxDescriptionLen bounds task descriptions.
	MaxDescriptionLen = 1000

	// MaxNameLen bounds profile names.
	MaxNameLen = 50

	// MinPasswordLen is enforced client-side only; the backend
	// authenticates by email and never checks the password.
	MinPasswordLen = 6
)

// Email checks that s looks like an email address.
func Email(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("email: required")
	}
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("email: not a valid address: %s", s)
	}
	return nil
}

// Password checks the minimum password length.
func Password(s string) error {
	if utf8.RuneCountInString(s) < MinPasswordLen {
		return fmt.Errorf("password: must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// Name checks a profile name.
func Name(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("name: required")
	}
	if utf8.RuneCountInString(s) > MaxNameLen {
		return fmt.Errorf("name: must be at most %d characters", MaxNameLen)
	}
	return nil
}

// TaskTitle checks a task title.
func TaskTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("title: required")
	}
	if utf8.RuneCountInString(s) > MaxTitleLen {
		return fmt.Errorf("title: must be at most %d characters", MaxTitleLen)
	}
	return nil
}

// TaskDescription checks a task description. Empty is allowed.
func TaskDescription(s string) error {
	if utf8.RuneCountInString(s) > MaxDescriptionLen {
		return fmt.Errorf("description: must be at most %d characters", MaxDescriptionLen)
	}
	return nil
}
