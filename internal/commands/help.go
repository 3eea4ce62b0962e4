package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  todo                                        List tasks
  todo list [common flags]                    List tasks, newest first
  todo add [common flags] [--desc <text>] <title...>
  todo edit [common flags] [--title <text>] [--desc <text>] <n>
  todo done [common flags] <n>
  todo rm [common flags] <n>
  todo login [common flags] --password <password> <email>
  todo signup [common flags] --password <password> --name <name> <email>
  todo logout [common flags]
  todo whoami [common flags]
  todo profile [common flags] [--name <name>] [--theme <theme>]
  todo help
  todo version

Common flags:
  --config <dir>   Override config directory
  --url <url>      Override backend base URL
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr

<n> is the task's number in 'todo list' output (newest first).
`
