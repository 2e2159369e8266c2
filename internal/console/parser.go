package console

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	// semanticRegex matches {{_content_}} format for semantic tags
	semanticRegex = regexp.MustCompile(`\{\{_([A-Za-z0-9_]+)_\}\}`)

	// directRegex matches {{|content|}} format for direct fg:bg:flags codes
	directRegex = regexp.MustCompile(`\{\{\|([A-Za-z0-9_:\-#]*)\|\}\}`)

	ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	isTTYGlobal bool

	// preferredProfile stores the detected or forced color profile
	preferredProfile termenv.Profile
)

func init() {
	isTTYGlobal = term.IsTerminal(int(os.Stdout.Fd()))
	preferredProfile = detectProfile()
}

// GetPreferredProfile returns the detected or forced color profile
func GetPreferredProfile() termenv.Profile {
	return preferredProfile
}

// SetPreferredProfile explicitly sets the color profile (useful for testing)
func SetPreferredProfile(p termenv.Profile) {
	preferredProfile = p
}

// SetTTY overrides terminal detection. Tags are stripped when tty is false.
func SetTTY(tty bool) {
	isTTYGlobal = tty
}

func detectProfile() termenv.Profile {
	// 1. Check COLORTERM for explicit overrides
	switch strings.ToLower(os.Getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return termenv.TrueColor
	case "8bit", "256color":
		return termenv.ANSI256
	case "4bit", "16color", "8color", "3bit":
		return termenv.ANSI
	case "1bit", "2color", "mono", "false", "0":
		return termenv.Ascii
	}

	// 2. NO_COLOR and dumb terminals
	if os.Getenv("NO_COLOR") != "" || strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return termenv.Ascii
	}

	// 3. Fallback to automatic detection
	return termenv.ColorProfile()
}

// ExpandTags replaces semantic {{_Tag_}} markers with their {{|style|}} definition.
// Unknown semantic tags are removed.
func ExpandTags(text string) string {
	return semanticRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{_" and "_}}"
		if style, ok := semanticTags[normaliseTag(content)]; ok {
			return "{{|" + style + "|}}"
		}
		return ""
	})
}

// ToANSI converts semantic and direct tags to ANSI escape sequences.
// When output is not a terminal all tags are stripped instead.
func ToANSI(text string) string {
	if !isTTYGlobal {
		return Strip(text)
	}

	text = ExpandTags(text)
	return directRegex.ReplaceAllStringFunc(text, func(match string) string {
		content := match[3 : len(match)-3] // Strip "{{|" and "|}}"
		return styleToANSI(content)
	})
}

// Parse is the entry point used by the logger and printers.
func Parse(text string) string {
	return ToANSI(text)
}

// Strip removes all semantic and direct tags from text, as well as ANSI escape sequences
func Strip(text string) string {
	text = semanticRegex.ReplaceAllString(text, "")
	text = directRegex.ReplaceAllString(text, "")
	return StripANSI(text)
}

// StripANSI removes ANSI SGR sequences.
func StripANSI(text string) string {
	return ansiRegex.ReplaceAllString(text, "")
}

// Sprintf formats according to a format specifier and returns the string with ANSI codes
func Sprintf(format string, a ...any) string {
	return ToANSI(fmt.Sprintf(format, a...))
}

// Println prints a line with ANSI color codes parsed
func Println(a ...any) {
	fmt.Println(ToANSI(fmt.Sprint(a...)))
}

// styleToANSI parses fg:bg:flags format and returns ANSI codes
func styleToANSI(content string) string {
	if content == "-" || content == "" {
		return CodeReset
	}

	parts := strings.Split(content, ":")
	var codes strings.Builder

	codes.WriteString(colorToANSI(parts[0], false))
	if len(parts) > 1 {
		codes.WriteString(colorToANSI(parts[1], true))
	}
	if len(parts) > 2 {
		for _, flag := range parts[2] {
			switch flag {
			case 'b':
				codes.WriteString(CodeBold)
			case 'd':
				codes.WriteString(CodeDim)
			case 'u':
				codes.WriteString(CodeUnderline)
			case 'r':
				codes.WriteString(CodeReverse)
			}
		}
	}
	return codes.String()
}

func colorToANSI(name string, background bool) string {
	name = strings.ToLower(name)
	if name == "" || name == "-" {
		return ""
	}
	if strings.HasPrefix(name, "#") {
		return wrapSequence(preferredProfile.Color(name).Sequence(background))
	}
	index, ok := basicColors[name]
	if !ok {
		return ""
	}
	return wrapSequence(preferredProfile.Color(strconv.Itoa(index)).Sequence(background))
}

func wrapSequence(seq string) string {
	if seq == "" {
		return ""
	}
	return termenv.CSI + seq + "m"
}

func normaliseTag(name string) string {
	return strings.ToLower(strings.Trim(name, "_"))
}
