package def

import (
	"context"
	"slices"
	"testing"
)

func FuzzConvert(f *testing.F) {
	for _, seed := range []string{
		"",
		"login",
		"login()logoff",
		"login(name, device,)\nlogoff(,)",
		"login(name : string, device : Device)\nlogoff(name)",
		"login(name: {first:string, last:string} )",
		"login(name: {\n  first:string,\n  last:string\n}\n, age: number )",
		"// comment\r\n\r\nx(y: {",
		"}}{{(:,)",
	} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, input string) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Convert(%q) panicked: %v", input, r)
			}
		}()

		defs := Convert(input)

		for _, d := range defs {
			if d.Name == "" {
				t.Fatalf("Convert(%q) kept a definition without name", input)
			}

			for _, prm := range d.Parameters {
				if prm.Name == "" || prm.Type == "" {
					t.Fatalf("Convert(%q) kept parameter %#v", input, prm)
				}
			}
		}

		tokens := Tokenize(Normalize(input))
		if len(tokens) == 0 {
			t.Fatalf("Tokenize produced no tokens for %q", input)
		}

		var joined []Token
		for _, g := range Split(tokens) {
			joined = append(joined, g...)
		}

		if !slices.Equal(joined, tokens) {
			t.Fatalf("Split does not partition tokens of %q", input)
		}

		again := Parse(context.Background(), "// fuzz\n"+input)
		if !slices.EqualFunc(defs, again, equalDefinition) {
			t.Fatalf("leading comment changed result for %q", input)
		}
	})
}

func equalDefinition(a, b Definition) bool {
	return a.Name == b.Name && slices.Equal(a.Parameters, b.Parameters)
}
