package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
)

func init() {
	Register(&SignupCmd{})
}

// SignupCmd implements the signup command. The backend registers
// unknown emails on login, so this is login with a name attached.
type SignupCmd struct {
	password string
	userName string
}

// SetPassword sets the password (for testing).
func (c *SignupCmd) SetPassword(p string) {
	c.password = p
}

// SetUserName sets the name (for testing).
func (c *SignupCmd) SetUserName(n string) {
	c.userName = n
}

func (c *SignupCmd) Name() string      { return "signup" }
func (c *SignupCmd) Aliases() []string { return []string{"register"} }
func (c *SignupCmd) Synopsis() string  { return "Create an account and sign in" }
func (c *SignupCmd) Usage() string {
	return "todo signup [common flags] --password <password> --name <name> <email>"
}
func (c *SignupCmd) NeedsAuth() bool { return false }

func (c *SignupCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.password, "password", "", "")
	fs.StringVar(&c.password, "p", "", "")
	fs.StringVar(&c.userName, "name", "", "")
	fs.StringVar(&c.userName, "n", "", "")
}

func (c *SignupCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: email required")
		return exitcode.UserError
	}
	email := strings.TrimSpace(args[0])

	if err := env.Session.SignUp(ctx, email, c.password, c.userName); err != nil {
		fmt.Fprintf(errOut, "error: sign up failed: %v\n", err)
		return exitcode.AuthError
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
