package testutil

import (
	"strings"
	"testing"
)

func TestDiff(t *testing.T) {
	if got := Diff("a\nb\n", "a\nb\n"); got != "" {
		t.Errorf("Diff of equal text = %q", got)
	}

	got := Diff("a\nb\n", "a\nc\n")
	for _, want := range []string{"--- want", "+++ got", "-b", "+c"} {
		if !strings.Contains(got, want) {
			t.Errorf("diff %q missing %q", got, want)
		}
	}
}

func TestMustJSON(t *testing.T) {
	got := MustJSON(t, map[string][]int{"a": {1}})
	if want := "{\n  \"a\": [\n    1\n  ]\n}\n"; got != want {
		t.Errorf("MustJSON = %q, want %q", got, want)
	}
}
