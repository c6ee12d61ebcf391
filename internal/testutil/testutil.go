// Package testutil holds assertions shared by the evdef tests. Failures are
// reported as unified diffs.
package testutil

import (
	"encoding/json"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// Diff returns a unified diff from want to got, or "" when they are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return err.Error()
	}

	return diff
}

// ExpectNoDiff reports a test error showing how got differs from want.
func ExpectNoDiff(t testing.TB, want, got string) {
	t.Helper()

	if diff := Diff(want, got); diff != "" {
		t.Errorf("unexpected output:\n%s", diff)
	}
}

// ExpectJSONEq compares want and got by their indented JSON encodings.
func ExpectJSONEq(t testing.TB, want, got any) {
	t.Helper()

	ExpectNoDiff(t, MustJSON(t, want), MustJSON(t, got))
}

// MustJSON returns the indented JSON encoding of v, failing the test if v
// cannot be encoded.
func MustJSON(t testing.TB, v any) string {
	t.Helper()

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("encode %T: %v", v, err)
	}

	return string(b) + "\n"
}
