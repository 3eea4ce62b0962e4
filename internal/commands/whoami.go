package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
)

func init() {
	Register(&WhoamiCmd{})
}

// WhoamiCmd implements the whoami command.
type WhoamiCmd struct{}

func (c *WhoamiCmd) Name() string      { return "whoami" }
func (c *WhoamiCmd) Aliases() []string { return nil }
func (c *WhoamiCmd) Synopsis() string  { return "Print the signed-in profile" }
func (c *WhoamiCmd) Usage() string     { return "todo whoami [common flags]" }
func (c *WhoamiCmd) NeedsAuth() bool   { return true }

func (c *WhoamiCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *WhoamiCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	user, ok := env.Session.User()
	if !ok {
		fmt.Fprintln(errOut, "error: profile not resolved")
		return exitcode.BackendError
	}

	output.FormatUser(out, user)

	// Best-effort expiry display. The token is opaque to the client;
	// it just happens to usually be a JWT. No signature verification.
	if exp, ok := tokenExpiry(env.Session.Token()); ok && !cfg.Quiet {
		fmt.Fprintf(out, "token expires: %s\n", exp.UTC().Format(time.RFC3339))
	}

	return exitcode.Success
}

// tokenExpiry extracts the exp claim from a JWT without verifying it.
func tokenExpiry(token string) (time.Time, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
