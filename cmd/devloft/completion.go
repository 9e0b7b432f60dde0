package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	devloft "github.com/alnah/go-devloft"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// supportedShells lists shells in the order shown to users.
var supportedShells = []Shell{ShellBash, ShellZsh, ShellFish}

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagInt
	flagEnum // has predefined values
	flagFile // file with glob pattern
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long     string   // --output
	Short    string   // -o (empty if none)
	Type     flagType // completion type
	Desc     string   // help text
	Values   []string // for enum flags
	FileGlob string   // for file flags, comma separated; "*" means any file
}

// commandDef describes a command for completion.
type commandDef struct {
	Name        string
	Desc        string
	Flags       []flagDef
	Args        []string // fixed positional words (help topics, shells)
	TakesFiles  bool     // accepts file arguments
	FilePattern string   // glob for file arguments (e.g., "*.md")
}

// completionMeta holds completion hints that a FlagSet cannot express.
// Flag names, types and descriptions come from the FlagSet.
type completionMeta struct {
	Values   []string // enum values
	FileGlob string   // file glob pattern
	IsDir    bool     // directory completion
}

// flagCompletionMeta maps flag names to their completion metadata.
// Names are shared between commands, so a hint applies wherever the flag exists.
func flagCompletionMeta() map[string]completionMeta {
	return map[string]completionMeta{
		"engine": {Values: devloft.Engines()},
		"order":  {Values: []string{string(devloft.Asc), string(devloft.Desc)}},
		"format": {Values: []string{string(devloft.FormatJSON), string(devloft.FormatYAML)}},
		"style":  {Values: devloft.StyleNames()},

		"config": {FileGlob: "*.yaml,*.yml"},
		"output": {FileGlob: "*"},

		"asset-path": {IsDir: true},
	}
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet
// and enriches them with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	meta := flagCompletionMeta()
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}

		switch f.Value.Type() {
		case "bool":
			fd.Type = flagBool
		case "int", "int8", "int16", "int32", "int64", "uint", "uint8", "uint16", "uint32", "uint64":
			fd.Type = flagInt
		default:
			fd.Type = flagString
		}

		if m, ok := meta[f.Name]; ok {
			switch {
			case len(m.Values) > 0:
				fd.Type = flagEnum
				fd.Values = m.Values
			case m.FileGlob != "":
				fd.Type = flagFile
				fd.FileGlob = m.FileGlob
			case m.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the same FlagSets the commands parse with.
func getCommands() []commandDef {
	shells := make([]string, len(supportedShells))
	for i, s := range supportedShells {
		shells[i] = string(s)
	}

	return []commandDef{
		{
			Name:        cmdRender,
			Desc:        "Render markdown files to HTML",
			Flags:       extractFlagsFromFlagSet(newRenderFlagSet(&renderFlags{})),
			TakesFiles:  true,
			FilePattern: "*.md,*.markdown",
		},
		{
			Name:        cmdQuery,
			Desc:        "Filter and sort a JSON or YAML record list",
			Flags:       extractFlagsFromFlagSet(newQueryFlagSet(&queryFlags{})),
			TakesFiles:  true,
			FilePattern: "*.json,*.yaml,*.yml",
		},
		{
			Name: cmdVersion,
			Desc: "Show version information",
		},
		{
			Name: cmdHelp,
			Desc: "Show help for a command",
			Args: []string{cmdRender, cmdQuery, cmdVersion, cmdHelp, cmdCompletion},
		},
		{
			Name: cmdCompletion,
			Desc: "Generate shell completion script",
			Args: shells,
		},
	}
}

// GenerateCompletion writes shell completion script to w.
// Returns error if shell is unsupported or write fails.
func GenerateCompletion(w io.Writer, shell Shell) error {
	var b strings.Builder
	commands := getCommands()

	switch shell {
	case ShellBash:
		writeBash(&b, commands)
	case ShellZsh:
		writeZsh(&b, commands)
	case ShellFish:
		writeFish(&b, commands)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}

	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: devloft completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(devloft completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(devloft completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    devloft completion fish > ~/.config/fish/completions/devloft.fish")
}

// commandNames returns the registry names in order.
func commandNames(commands []commandDef) []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name
	}
	return names
}

// globExtensions turns "*.md,*.markdown" into ["md", "markdown"].
// It returns nil for "*", which means any file.
func globExtensions(glob string) []string {
	var exts []string
	for _, part := range strings.Split(glob, ",") {
		ext := strings.TrimPrefix(strings.TrimSpace(part), "*.")
		if ext == "" || ext == "*" {
			return nil
		}
		exts = append(exts, ext)
	}
	return exts
}

// ---------------------------------------------------------------------------
// Bash
// ---------------------------------------------------------------------------

func writeBash(b *strings.Builder, commands []commandDef) {
	b.WriteString("# bash completion for devloft\n\n")
	b.WriteString("_devloft_completions() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=\"${COMP_WORDS[1]}\"\n\n")
	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(commandNames(commands), " "))
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Args) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		writeBashFlagValues(b, c.Flags)
		if len(c.Flags) > 0 {
			b.WriteString("        if [[ \"$cur\" == -* ]]; then\n")
			fmt.Fprintf(b, "            COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(bashFlagWords(c.Flags), " "))
			b.WriteString("            return\n")
			b.WriteString("        fi\n")
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(b, "        COMPREPLY=($(compgen -W %q -- \"$cur\"))\n", strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(b, "        COMPREPLY=($(%s) $(compgen -d -- \"$cur\"))\n", bashFileCompgen(c.FilePattern))
		}
		b.WriteString("        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -o filenames -F _devloft_completions devloft\n")
}

// writeBashFlagValues completes the value of the flag in $prev.
func writeBashFlagValues(b *strings.Builder, flags []flagDef) {
	var lines []string
	for _, f := range flags {
		var action string
		switch f.Type {
		case flagEnum:
			action = fmt.Sprintf("COMPREPLY=($(compgen -W %q -- \"$cur\"))", strings.Join(f.Values, " "))
		case flagFile:
			action = fmt.Sprintf("COMPREPLY=($(%s) $(compgen -d -- \"$cur\"))", bashFileCompgen(f.FileGlob))
		case flagDir:
			action = "COMPREPLY=($(compgen -d -- \"$cur\"))"
		case flagString, flagInt:
			action = "COMPREPLY=()"
		default:
			continue
		}
		lines = append(lines, fmt.Sprintf("        %s)\n            %s\n            return\n            ;;\n", bashFlagPattern(f), action))
	}
	if len(lines) == 0 {
		return
	}

	b.WriteString("        case \"$prev\" in\n")
	for _, l := range lines {
		b.WriteString(l)
	}
	b.WriteString("        esac\n")
}

func bashFlagPattern(f flagDef) string {
	if f.Short != "" {
		return "--" + f.Long + "|-" + f.Short
	}
	return "--" + f.Long
}

func bashFlagWords(flags []flagDef) []string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return words
}

// bashFileCompgen builds a compgen call filtered by glob.
func bashFileCompgen(glob string) string {
	exts := globExtensions(glob)
	if len(exts) == 0 {
		return "compgen -f -- \"$cur\""
	}
	return fmt.Sprintf("compgen -f -X '!*.@(%s)' -- \"$cur\"", strings.Join(exts, "|"))
}

// ---------------------------------------------------------------------------
// Zsh
// ---------------------------------------------------------------------------

func writeZsh(b *strings.Builder, commands []commandDef) {
	b.WriteString("#compdef devloft\n\n")
	b.WriteString("_devloft() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range commands {
		fmt.Fprintf(b, "        '%s:%s'\n", c.Name, zshEscape(c.Desc))
	}
	b.WriteString("    )\n\n")
	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")
	b.WriteString("    local cmd=\"${words[2]}\"\n")
	b.WriteString("    shift words\n")
	b.WriteString("    (( CURRENT-- ))\n\n")
	b.WriteString("    case \"$cmd\" in\n")

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Args) == 0 && !c.TakesFiles {
			continue
		}
		fmt.Fprintf(b, "    %s)\n", c.Name)
		b.WriteString("        _arguments -s")
		for _, f := range c.Flags {
			fmt.Fprintf(b, " \\\n            %s", zshFlagSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(b, " \\\n            '1:%s:(%s)'", c.Name, strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(b, " \\\n            '*:file:%s'", zshFileAction(c.FilePattern))
		}
		b.WriteString("\n        ;;\n")
	}

	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("compdef _devloft devloft\n")
}

// zshFlagSpec renders one _arguments spec, e.g.
// '(-e --engine)'{-e,--engine}'[markdown engine]:engine:(rules commonmark)'.
func zshFlagSpec(f flagDef) string {
	desc := "[" + zshEscape(f.Desc) + "]"

	var value string
	switch f.Type {
	case flagEnum:
		value = fmt.Sprintf(":%s:(%s)", f.Long, strings.Join(f.Values, " "))
	case flagFile:
		value = ":file:" + zshFileAction(f.FileGlob)
	case flagDir:
		value = ":directory:_files -/"
	case flagString, flagInt:
		value = ":" + f.Long + ": "
	}

	if f.Short == "" {
		return fmt.Sprintf("'--%s%s%s'", f.Long, desc, value)
	}
	return fmt.Sprintf("'(-%s --%s)'{-%s,--%s}'%s%s'", f.Short, f.Long, f.Short, f.Long, desc, value)
}

func zshFileAction(glob string) string {
	exts := globExtensions(glob)
	if len(exts) == 0 {
		return "_files"
	}
	return fmt.Sprintf("_files -g \"*.(%s)\"", strings.Join(exts, "|"))
}

// zshEscape prepares text for a single-quoted _arguments description.
var zshEscape = strings.NewReplacer(
	`'`, `'\''`,
	`[`, `\[`,
	`]`, `\]`,
	`:`, `\:`,
).Replace

// ---------------------------------------------------------------------------
// Fish
// ---------------------------------------------------------------------------

func writeFish(b *strings.Builder, commands []commandDef) {
	b.WriteString("# fish completion for devloft\n\n")
	b.WriteString("function __fish_devloft_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")
	b.WriteString("function __fish_devloft_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test \"$cmd[2]\" = \"$argv[1]\"\n")
	b.WriteString("end\n\n")
	b.WriteString("complete -c devloft -f\n\n")

	for _, c := range commands {
		fmt.Fprintf(b, "complete -c devloft -n __fish_devloft_needs_command -a %s -d '%s'\n", c.Name, fishEscape(c.Desc))
	}

	for _, c := range commands {
		if len(c.Flags) == 0 && len(c.Args) == 0 && !c.TakesFiles {
			continue
		}
		cond := fmt.Sprintf("'__fish_devloft_using_command %s'", c.Name)
		b.WriteString("\n")
		for _, f := range c.Flags {
			fmt.Fprintf(b, "complete -c devloft -n %s%s\n", cond, fishFlagSpec(f))
		}
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(b, "complete -c devloft -n %s -a '%s'\n", cond, strings.Join(c.Args, " "))
		case c.TakesFiles:
			fmt.Fprintf(b, "complete -c devloft -n %s -F\n", cond)
		}
	}
}

func fishFlagSpec(f flagDef) string {
	var b strings.Builder
	if f.Short != "" {
		fmt.Fprintf(&b, " -s %s", f.Short)
	}
	fmt.Fprintf(&b, " -l %s", f.Long)

	switch f.Type {
	case flagEnum:
		fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
	case flagFile:
		b.WriteString(" -r -F")
	case flagDir:
		b.WriteString(" -x -a '(__fish_complete_directories)'")
	case flagString, flagInt:
		b.WriteString(" -x")
	}

	fmt.Fprintf(&b, " -d '%s'", fishEscape(f.Desc))
	return b.String()
}

// fishEscape prepares text for a single-quoted fish string.
var fishEscape = strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace
