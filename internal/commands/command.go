// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/session"
	"todo/internal/tasks"
)

// Env bundles the per-invocation collaborators. The session manager is
// the leaf dependency; the task store is constructed on top of it.
type Env struct {
	Service service.Service
	Session *session.Manager
	Tasks   *tasks.Store
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a bootstrapped,
	// authenticated session. Commands like help, version, login,
	// logout return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command. env is nil only for commands that use
	// neither the session nor the backend (help, version). Returns the
	// exit code.
	Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int
}
