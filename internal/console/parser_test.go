package console

import (
	"EnvFileGenerator/internal/testutils"
	"testing"

	"github.com/muesli/termenv"
)

func withTerminal(t *testing.T, tty bool, profile termenv.Profile) {
	t.Helper()
	oldTTY, oldProfile := isTTYGlobal, preferredProfile
	SetTTY(tty)
	SetPreferredProfile(profile)
	t.Cleanup(func() {
		SetTTY(oldTTY)
		SetPreferredProfile(oldProfile)
	})
}

func TestToANSI(t *testing.T) {
	withTerminal(t, true, termenv.ANSI)

	tests := []struct {
		input    string
		expected string
	}{
		{"Hello World", "Hello World"},
		{"{{|red|}}Red{{|-|}}", "\x1b[31mRed" + CodeReset},
		{"{{|::b|}}Bold", CodeBold + "Bold"},
		{"{{_Var_}}KEY{{|-|}}", "\x1b[35mKEY" + CodeReset},
		{"{{_File_}}.env", "\x1b[36m" + CodeBold + ".env"},
		{"{{_Unknown_}}plain", "plain"},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		actual := ToANSI(tt.input)
		cases = append(cases, testutils.TestCase{
			Input:    tt.input,
			Expected: tt.expected,
			Actual:   actual,
			Pass:     actual == tt.expected,
		})
	}
	testutils.PrintTestTable(t, cases)
}

func TestToANSIWithoutTerminal(t *testing.T) {
	withTerminal(t, false, termenv.ANSI)

	got := ToANSI("{{_UserCommand_}}envgen{{|-|}} --build")
	if got != "envgen --build" {
		t.Errorf("ToANSI() = %q; want tags stripped", got)
	}
}

func TestAsciiProfileDropsColors(t *testing.T) {
	withTerminal(t, true, termenv.Ascii)

	got := ToANSI("{{|red|}}x{{|-|}}")
	if got != "x"+CodeReset {
		t.Errorf("ToANSI() = %q; want only reset code", got)
	}
}

func TestStrip(t *testing.T) {
	in := "\x1b[31m{{_File_}}.env{{|-|}}\x1b[0m"
	if got := Strip(in); got != ".env" {
		t.Errorf("Strip(%q) = %q; want %q", in, got, ".env")
	}
}
