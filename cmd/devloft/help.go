package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: devloft <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render     Render markdown files to HTML")
	fmt.Fprintln(w, "  query      Filter and sort a JSON or YAML record list")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w, "  completion Generate shell completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'devloft help <command>' for details on a specific command.")
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: devloft render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render markdown files to HTML fragments or standalone pages.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w, "           A single file without --output is written to stdout.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --rewrite-links       Rebase relative links to the output location")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Markdown:")
	fmt.Fprintln(w, "  -e, --engine <s>          Engine: rules, commonmark")
	fmt.Fprintln(w, "      --ol                  Wrap ordered list items in <ol>")
	fmt.Fprintln(w, "      --front-matter        Read and strip a leading metadata block")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page:")
	fmt.Fprintln(w, "      --standalone          Wrap output in a full HTML page")
	fmt.Fprintln(w, "      --style <s>           Style name (default, dark, minimal) or CSS path")
	fmt.Fprintln(w, "      --title <s>           Page title (\"\" = auto from H1, then file name)")
	fmt.Fprintln(w, "      --date <s>            Footer date: text, today or today:FORMAT")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom styles/ and templates/ directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
}

// printQueryUsage prints usage for the query command.
func printQueryUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: devloft query [input] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Filter and sort an array of objects. Output is indented JSON.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    JSON or YAML file; omit or use - for stdin")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Query:")
	fmt.Fprintln(w, "  -f, --filter <expr>       field=value, field!=value, field>value,")
	fmt.Fprintln(w, "                            field<value, field>=value, field<=value")
	fmt.Fprintln(w, "  -s, --sort <field>        Sort by field (stable)")
	fmt.Fprintln(w, "      --order <s>           Sort order: asc, desc")
	fmt.Fprintln(w, "      --format <s>          Input format: json, yaml (default: detect)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default: stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Numbers compare numerically when both sides are numeric;")
	fmt.Fprintln(w, "otherwise = and != ignore case.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case cmdRender:
		printRenderUsage(env.Stdout)
	case cmdQuery:
		printQueryUsage(env.Stdout)
	case cmdVersion:
		fmt.Fprintln(env.Stdout, "Usage: devloft version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case cmdHelp:
		fmt.Fprintln(env.Stdout, "Usage: devloft help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	case cmdCompletion:
		printCompletionUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
