package console

// ANSI escape codes used directly by the logger and for resets.
const (
	CodeReset     = "\033[0m"
	CodeBold      = "\033[1m"
	CodeDim       = "\033[2m"
	CodeUnderline = "\033[4m"
	CodeReverse   = "\033[7m"

	CodeRed    = "\033[31m"
	CodeGreen  = "\033[32m"
	CodeYellow = "\033[33m"
	CodeBlue   = "\033[34m"
)

// basicColors maps colour names to their ANSI palette index.
var basicColors = map[string]int{
	"black":   0,
	"red":     1,
	"green":   2,
	"yellow":  3,
	"blue":    4,
	"magenta": 5,
	"cyan":    6,
	"white":   7,
}

// semanticTags maps {{_Tag_}} names (lower case) to fg:bg:flags styles.
var semanticTags = map[string]string{
	"applicationname":        "cyan::b",
	"version":                "cyan",
	"file":                   "cyan::b",
	"folder":                 "cyan::b",
	"var":                    "magenta",
	"placeholder":            "magenta::b",
	"usercommand":            "yellow::b",
	"usercommanderror":       "red::u",
	"usercommanderrormarker": "red",
	"usagecommand":           "yellow::b",
	"usageoption":            "yellow",
	"usagefile":              "cyan::b",
	"usagevar":               "magenta",
	"diffadd":                "green",
	"diffremove":             "red",
	"notice":                 "green",
	"warn":                   "yellow",
	"error":                  "red",
	"yes":                    "green",
	"no":                     "red",
}
