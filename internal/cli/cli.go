// Package cli provides command-line interface functionality for crosscheck.
package cli

import (
	"fmt"
	"strings"

	"github.com/crosscheck-build/crosscheck/internal/errors"
	"github.com/crosscheck-build/crosscheck/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for CLI commands.
var out = output.New()

// Run executes the CLI with the given arguments and returns an exit code.
// With no command, the full verification pipeline runs.
func Run(args []string) int {
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help", "help":
			printUsage()
			return 0
		case "--version", "version":
			fmt.Printf("crosscheck %s\n", Version)
			return 0
		}
	}

	opts, remaining, err := parseGlobalFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	out.SetQuiet(opts.Quiet)

	if len(remaining) == 0 {
		return cmdRun(opts)
	}

	cmd := remaining[0]
	cmdArgs := remaining[1:]

	switch cmd {
	case "run":
		return cmdRun(opts)
	case "plan":
		return cmdPlan(opts)
	case "config":
		return cmdConfig(cmdArgs, opts)
	default:
		out.ErrorPrefix("unknown command %q", cmd)
		out.Hint("run 'crosscheck --help' for usage")
		return errors.ExitConfigError
	}
}

// GlobalOptions holds parsed global flags.
type GlobalOptions struct {
	Quiet    bool
	Manifest string // explicit manifest path, overrides discovery
}

// parseGlobalFlags manually parses global flags from arguments.
//
// Manual parsing is used instead of stdlib flag package because flags can
// appear anywhere in the argument list, not just before the command, and
// custom error messages with usage hints are needed.
func parseGlobalFlags(args []string) (*GlobalOptions, []string, error) {
	opts := &GlobalOptions{}
	var remaining []string

	i := 0
	for i < len(args) {
		arg := args[i]

		switch {
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
			i++
		case arg == "--manifest":
			if i+1 >= len(args) {
				return nil, nil, fmt.Errorf("--manifest requires a value")
			}
			opts.Manifest = args[i+1]
			i += 2
		case strings.HasPrefix(arg, "--manifest="):
			opts.Manifest = strings.TrimPrefix(arg, "--manifest=")
			i++
		case strings.HasPrefix(arg, "-"):
			return nil, nil, fmt.Errorf("unknown flag %q", arg)
		default:
			remaining = append(remaining, arg)
			i++
		}
	}

	return opts, remaining, nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("crosscheck - workspace build verification")

	w.HelpSection("Usage:")
	w.HelpUsage("crosscheck [options]             Run the full verification pipeline")
	w.HelpUsage("crosscheck <command> [options]")

	w.HelpSection("Commands:")
	w.HelpCommand("run", "Run the verification pipeline (the default)", 15)
	w.HelpCommand("plan", "List every check without running anything", 15)
	w.HelpCommand("config", "Show the effective verification plan", 15)
	w.HelpCommand("config validate", "Validate the workspace manifest", 15)
	w.HelpCommand("version", "Show version information", 15)

	w.HelpSection("Options:")
	w.HelpFlag("-q, --quiet", "Suppress progress output (diagnostics still shown)", 17)
	w.HelpFlag("--manifest=<path>", "Use an explicit manifest instead of discovery", 17)
	w.HelpFlag("-h, --help", "Show this help", 17)

	w.HelpSection("Examples:")
	w.HelpExample("crosscheck", "Verify the workspace, stopping at the first failure")
	w.HelpExample("crosscheck plan", "Show which checks would run, in order")
	w.Println("")
}
