package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	env := DefaultEnv()

	// GOMAXPROCS must be settled before the render worker count is resolved.
	configureMaxProcs(wantsVerbose(os.Args), env.Stderr)

	os.Exit(runMain(os.Args, env))
}

// configureMaxProcs adjusts GOMAXPROCS to the container CPU quota.
// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
// in which case Go runtime defaults apply and the program continues safely.
func configureMaxProcs(verbose bool, w io.Writer) {
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(w, format+"\n", args...)
		}))
		return
	}
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
}

// wantsVerbose reports whether -v or --verbose appears before a "--".
func wantsVerbose(args []string) bool {
	end := len(args)
	if i := slices.Index(args, "--"); i >= 0 {
		end = i
	}
	return slices.Contains(args[:end], "-v") || slices.Contains(args[:end], "--verbose")
}

// runMain dispatches to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]

	// A bare Markdown path is shorthand for "render <path>".
	if !isCommand(cmd) && looksLikeMarkdown(cmd) {
		cmd, rest = cmdRender, args[1:]
	}

	var err error
	switch cmd {
	case cmdRender:
		err = runRenderCmd(rest, env)
	case cmdQuery:
		err = runQueryCmd(rest, env)
	case cmdVersion:
		fmt.Fprintf(env.Stdout, "devloft %s\n", Version)
		return ExitSuccess
	case cmdCompletion:
		err = runCompletion(rest, env)
	case cmdHelp, "-h", "--help":
		return runHelp(rest, env)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", cmd)
		printUsage(env.Stderr)
		return ExitUsage
	}

	if err != nil {
		fmt.Fprintln(env.Stderr, describeError(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// Command names.
const (
	cmdRender     = "render"
	cmdQuery      = "query"
	cmdVersion    = "version"
	cmdHelp       = "help"
	cmdCompletion = "completion"
)

// isCommand reports whether name is a known command.
func isCommand(name string) bool {
	switch name {
	case cmdRender, cmdQuery, cmdVersion, cmdHelp, cmdCompletion:
		return true
	}
	return false
}

// looksLikeMarkdown reports whether arg has a Markdown file extension.
func looksLikeMarkdown(arg string) bool {
	return validateMarkdownExtension(arg) == nil
}
