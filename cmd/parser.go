package cmd

import (
	"EnvFileGenerator/internal/version"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ParseError wraps argument parsing errors with the command line, a caret
// under the failing argument and the usage of the command involved.
type ParseError struct {
	Args           []string // The full argument list passed to Parse
	Index          int      // The index where the error occurred
	Message        string   // The specific error message
	FailingCommand string   // The command being processed (e.g. "--build")
}

func (e *ParseError) Error() string {
	indent := "   "

	var cmdLineParts []string
	cmdLineParts = append(cmdLineParts, fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", version.CommandName))

	for i := 0; i <= e.Index && i < len(e.Args); i++ {
		str := e.Args[i]
		if i == e.Index {
			str = fmt.Sprintf("{{_UserCommandError_}}%s{{|-|}}", str)
		} else {
			str = fmt.Sprintf("{{_UserCommand_}}%s{{|-|}}", str)
		}
		cmdLineParts = append(cmdLineParts, str)
	}

	// 'envgen previous parts failing_part'
	cmdLineStr := "'" + strings.Join(cmdLineParts, " ") + "'"
	caretOffset := len(indent) + 1 + len(version.CommandName) + 1
	for i := 0; i < e.Index && i < len(e.Args); i++ {
		caretOffset += len(e.Args[i]) + 1
	}
	pointerLine := strings.Repeat(" ", caretOffset) + "{{_UserCommandErrorMarker_}}^{{|-|}}"

	// Message may contain %c (command) or %o (option)
	failingOpt := ""
	if e.Index < len(e.Args) {
		failingOpt = e.Args[e.Index]
	}
	replacer := strings.NewReplacer(
		"%c", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", e.FailingCommand),
		"%o", fmt.Sprintf("'{{_UserCommand_}}%s{{|-|}}'", failingOpt),
	)
	formattedMsg := replacer.Replace(e.Message)

	out := fmt.Sprintf("Error in command line:\n\n%s%s\n%s\n\n%s%s\n", indent, cmdLineStr, pointerLine, indent, formattedMsg)

	if e.FailingCommand != "" {
		out += fmt.Sprintf("\n%sUsage is:\n", indent)
		for _, line := range strings.Split(GetUsage(e.FailingCommand), "\n") {
			out += fmt.Sprintf("%s%s\n", indent, line)
		}
	} else {
		out += fmt.Sprintf("\n%sRun '{{_UserCommand_}}%s --help{{|-|}}' for usage.\n", indent, version.CommandName)
	}

	return out
}

// CommandGroup represents a parsed group of flags and a command with its arguments
type CommandGroup struct {
	Flags   []string
	Command string
	Args    []string
}

// FullSlice returns the reconstructed slice of strings for the group
func (cg CommandGroup) FullSlice() []string {
	var s []string
	s = append(s, cg.Flags...)
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

// CommandSlice returns the command and its arguments as a slice
func (cg CommandGroup) CommandSlice() []string {
	var s []string
	if cg.Command != "" {
		s = append(s, cg.Command)
	}
	s = append(s, cg.Args...)
	return s
}

var modifiers = map[string]bool{
	"-f": true, "--force": true,
	"-n": true, "--dry-run": true,
	"-v": true, "--verbose": true,
	"-x": true, "--debug": true,
}

// IsModifier reports whether s is a flag that applies to the following command.
func IsModifier(s string) bool {
	return modifiers[s]
}

// maxArgs is the number of optional positional arguments each command takes.
var maxArgs = map[string]int{
	"-b": 3, "--build": 3,
	"-d": 3, "--diff": 3,
	"-E": 1, "--example": 1,
	"-c": 1, "--check": 1,
}

// Parse splits the raw command line arguments into groups. Each group is a
// run of modifiers followed by at most one command and that command's
// arguments. Trailing modifiers without a command form a group of their own.
func Parse(args []string) ([]CommandGroup, error) {
	InitFlags()

	// Expand combined short flags (e.g. -nb -> -n -b)
	var expandedArgs []string
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") && !strings.HasPrefix(arg, "--") && len(arg) > 2 {
			for _, c := range arg[1:] {
				expandedArgs = append(expandedArgs, fmt.Sprintf("-%c", c))
			}
		} else {
			expandedArgs = append(expandedArgs, arg)
		}
	}

	var groups []CommandGroup
	var currentGroup CommandGroup
	var lastCommand string

	i := 0
	for i < len(expandedArgs) {
		arg := expandedArgs[i]

		if !strings.HasPrefix(arg, "-") {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o", FailingCommand: lastCommand}
		}

		if IsModifier(arg) {
			currentGroup.Flags = append(currentGroup.Flags, arg)
			lastCommand = arg
			i++
			continue
		}

		if lookupFlag(arg) == nil {
			return nil, &ParseError{Args: expandedArgs, Index: i, Message: "Invalid option %o"}
		}

		currentGroup.Command = arg
		lastCommand = arg
		cmd := arg
		i++

		switch cmd {
		case "-h", "--help":
			// Optional command to show the usage of
			if i < len(expandedArgs) && strings.HasPrefix(expandedArgs[i], "-") {
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
		default:
			for count := 0; count < maxArgs[cmd]; count++ {
				if i >= len(expandedArgs) || strings.HasPrefix(expandedArgs[i], "-") {
					break
				}
				currentGroup.Args = append(currentGroup.Args, expandedArgs[i])
				i++
			}
		}

		// Anything left before the next flag is one argument too many
		if i < len(expandedArgs) && !strings.HasPrefix(expandedArgs[i], "-") {
			return nil, &ParseError{Args: expandedArgs, Index: i, FailingCommand: cmd, Message: "Too many arguments for %c"}
		}

		groups = append(groups, currentGroup)
		currentGroup = CommandGroup{}
	}

	if len(currentGroup.Flags) > 0 {
		groups = append(groups, currentGroup)
	}

	return groups, nil
}

// lookupFlag finds the registered flag for a command argument.
func lookupFlag(arg string) *pflag.Flag {
	if strings.HasPrefix(arg, "--") {
		return pflag.Lookup(strings.TrimPrefix(arg, "--"))
	}
	short := strings.TrimPrefix(arg, "-")
	if len(short) == 1 {
		return pflag.CommandLine.ShorthandLookup(short)
	}
	return nil
}
