package testutils

import (
	"fmt"
	"strings"
	"testing"
	"text/tabwriter"
)

// TestCase represents a single comparison made by a table-driven test.
type TestCase struct {
	Name     string
	Input    string
	Expected string
	Actual   string
	Pass     bool
}

// PrintTestTable logs an aligned Input / Expected / Returned table and
// reports every failing row through t.Errorf.
func PrintTestTable(t *testing.T, cases []TestCase) {
	t.Helper()

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 3, ' ', 0)
	fmt.Fprintf(w, "  Input\tExpected Value\tReturned Value\t\n")

	for _, tc := range cases {
		marker := " "
		if !tc.Pass {
			marker = ">"
		}
		fmt.Fprintf(w, "%s %q\t%q\t%q\t\n", marker, tc.Input, tc.Expected, tc.Actual)
	}
	w.Flush()
	t.Log("\n" + sb.String())

	for _, tc := range cases {
		if tc.Pass {
			continue
		}
		label := tc.Name
		if label == "" {
			label = tc.Input
		}
		t.Errorf("%s: got %q, want %q", label, tc.Actual, tc.Expected)
	}
}
