package validate_test

import (
	"strings"
	"testing"

	"todo/internal/validate"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"user@example.com", true},
		{"a@x.com", true},
		{"", false},
		{"   ", false},
		{"not-an-address", false},
		{"missing@domain@twice", false},
	}
	for _, tc := range cases {
		err := validate.Email(tc.in)
		if tc.ok && err != nil {
			t.Errorf("Email(%q): unexpected error: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("Email(%q): expected error", tc.in)
		}
	}
}

func TestPassword(t *testing.T) {
	if err := validate.Password("secret1"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validate.Password("123456"); err != nil {
		t.Errorf("unexpected error at minimum length: %v", err)
	}
	if err := validate.Password("12345"); err == nil {
		t.Error("expected error below minimum length")
	}
}

func TestName(t *testing.T) {
	if err := validate.Name("Ava"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validate.Name(strings.Repeat("a", 50)); err != nil {
		t.Errorf("unexpected error at maximum length: %v", err)
	}
	if err := validate.Name(""); err == nil {
		t.Error("expected error for empty name")
	}
	if err := validate.Name(strings.Repeat("a", 51)); err == nil {
		t.Error("expected error for over-long name")
	}
}

func TestTaskTitle(t *testing.T) {
	if err := validate.TaskTitle("Buy milk"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := validate.TaskTitle(strings.Repeat("x", 200)); err != nil {
		t.Errorf("unexpected error at maximum length: %v", err)
	}
	if err := validate.TaskTitle("  "); err == nil {
		t.Error("expected error for blank title")
	}
	if err := validate.TaskTitle(strings.Repeat("x", 201)); err == nil {
		t.Error("expected error for over-long title")
	}
}

func TestTaskDescription(t *testing.T) {
	if err := validate.TaskDescription(""); err != nil {
		t.Errorf("empty description must be allowed: %v", err)
	}
	if err := validate.TaskDescription(strings.Repeat("x", 1000)); err != nil {
		t.Errorf("unexpected error at maximum length: %v", err)
	}
	if err := validate.TaskDescription(strings.Repeat("x", 1001)); err == nil {
		t.Error("expected error for over-long description")
	}
}
