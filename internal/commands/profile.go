package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ProfileCmd{})
}

// ProfileCmd implements the profile command.
type ProfileCmd struct {
	userName string
	theme    string
}

// SetUserName sets the name (for testing).
func (c *ProfileCmd) SetUserName(n string) {
	c.userName = n
}

// SetTheme sets the theme (for testing).
func (c *ProfileCmd) SetTheme(t string) {
	c.theme = t
}

func (c *ProfileCmd) Name() string      { return "profile" }
func (c *ProfileCmd) Aliases() []string { return nil }
func (c *ProfileCmd) Synopsis() string  { return "Update profile fields" }
func (c *ProfileCmd) Usage() string {
	return "todo profile [common flags] [--name <name>] [--theme <theme>]"
}
func (c *ProfileCmd) NeedsAuth() bool { return true }

func (c *ProfileCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.userName, "name", "", "")
	fs.StringVar(&c.theme, "theme", "", "")
}

func (c *ProfileCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if c.userName == "" && c.theme == "" {
		fmt.Fprintln(errOut, "error: nothing to update (use --name or --theme)")
		return exitcode.UserError
	}

	var patch service.ProfileUpdate
	if c.userName != "" {
		patch.Name = &c.userName
	}
	if c.theme != "" {
		patch.ThemePreference = &c.theme
	}

	if err := env.Session.UpdateProfile(ctx, patch); err != nil {
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
