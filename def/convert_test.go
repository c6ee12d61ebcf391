package def

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/ardnew/evdef/internal/testutil"
	"github.com/ardnew/evdef/log"
)

func def(name string, params ...Parameter) Definition {
	if params == nil {
		params = []Parameter{}
	}

	return Definition{Name: name, Parameters: params}
}

func p(name, typ string) Parameter { return Parameter{Name: name, Type: typ} }

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Definitions
	}{
		{"empty", "", Definitions{}},
		{"comments and blanks", "// test\n        \n\n", Definitions{}},
		{"name only", "login", Definitions{def("login")}},
		{"empty parameter list", "login()", Definitions{def("login")}},
		{
			"untyped parameter",
			"login(name)",
			Definitions{def("login", p("name", "unknown"))},
		},
		{
			"trailing and lone commas",
			"login(name, device,)\nlogoff(,)",
			Definitions{
				def("login", p("name", "unknown"), p("device", "unknown")),
				def("logoff"),
			},
		},
		{
			"typed parameters",
			"login(name : string, device : Device)\nlogoff(name)",
			Definitions{
				def("login", p("name", "string"), p("device", "Device")),
				def("logoff", p("name", "unknown")),
			},
		},
		{
			"nested braces",
			"login(name: {first:string, last:string} )",
			Definitions{def("login", p("name", "{first:string, last:string}"))},
		},
		{
			"stray closing brace absorbs later parameters",
			"f(a: }, b)",
			Definitions{def("f", p("a", "}, b"))},
		},
		{
			"stray closing brace keeps inner blanks",
			"f(a: x}  y)",
			Definitions{def("f", p("a", "x}  y"))},
		},
		{
			"no separator after parameters",
			"login()logoff",
			Definitions{def("login"), def("logoff")},
		},
		{
			"mixed line endings",
			"\rlogin\r\n\n\r\nlogoff\n\n\r",
			Definitions{def("login"), def("logoff")},
		},
		{"colon without name or type", "login(:)", Definitions{def("login")}},
		{"colon before space", "login( :)", Definitions{def("login")}},
		{"colon after space", "login(: )", Definitions{def("login")}},
		{"spaced colon", "login( : )", Definitions{def("login")}},
		{"empty type", "login(name:)", Definitions{def("login", p("name", "unknown"))}},
		{"spaced empty type", "login(name :)", Definitions{def("login", p("name", "unknown"))}},
		{
			"multi-line type",
			"login(name: {\n  first:string,\n  last:string\n}\n, age: number )",
			Definitions{def("login",
				p("name", "{\n  first:string,\n  last:string\n}"),
				p("age", "number"))},
		},
		{
			"comments between definitions",
			"// events\nlogin(user: User)\n  // internal\nlogoff\r\n",
			Definitions{def("login", p("user", "User")), def("logoff")},
		},
		{
			"leading punctuation without name",
			"(a, b)\nc",
			Definitions{def("c")},
		},
		{
			"unmatched open parenthesis",
			"login(name: string",
			Definitions{def("login", p("name", "string"))},
		},
		{
			"unterminated brace runs to end of input",
			"a(b: {x,\ny\nc",
			Definitions{def("a", p("b", "{x,\ny\nc"))},
		},
		{
			"duplicate definitions kept in order",
			"a\nb\na(x)",
			Definitions{def("a"), def("b"), def("a", p("x", "unknown"))},
		},
		{
			"blank line after parameters",
			"a()\n\nb",
			Definitions{def("a"), def("b")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.ExpectJSONEq(t, tt.want, Convert(tt.input))
		})
	}
}

func TestConvert_Properties(t *testing.T) {
	inputs := []string{
		"",
		"login(name, device,)\nlogoff(,)",
		"a(b: {c, d: {e}}, f:, :g, , h)\n\n\ni()j(k)",
		"))((::,,{{}}",
		"x(y: {\n",
		"\uFFFD(\xff: \xfe)",
	}

	for _, input := range inputs {
		defs := Convert(input)

		for _, d := range defs {
			if d.Name == "" {
				t.Errorf("%q: definition without name", input)
			}

			for _, prm := range d.Parameters {
				if prm.Name == "" || prm.Type == "" {
					t.Errorf("%q: incomplete parameter %#v", input, prm)
				}
			}
		}

		commented := Convert("// leading comment\n   // another\n" + input)
		testutil.ExpectJSONEq(t, defs, commented)
	}
}

func TestConvert_OrderPreserved(t *testing.T) {
	names := []string{"zeta", "alpha", "mid", "beta", "omega"}

	var src strings.Builder
	for _, n := range names {
		src.WriteString(n + "(z, a, m)\n")
	}

	defs := Convert(src.String())

	if got := defs.Names(); strings.Join(got, ",") != strings.Join(names, ",") {
		t.Errorf("Names() = %v, want %v", got, names)
	}

	for _, d := range defs {
		var params []string
		for _, prm := range d.Parameters {
			params = append(params, prm.Name)
		}

		if got := strings.Join(params, ","); got != "z,a,m" {
			t.Errorf("%s parameters = %s", d.Name, got)
		}
	}
}

func TestConvert_Independent(t *testing.T) {
	first := Convert("a(x: int)")
	first[0].Parameters[0].Type = "mutated"

	second := Convert("a(x: int)")
	if second[0].Parameters[0].Type != "int" {
		t.Error("results of separate calls share state")
	}
}

func TestParse_Logging(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf, log.WithLevel(log.LevelTrace), log.WithPretty(false))
	input := "a(x)\n(b)\nc"

	got := Parse(context.Background(), input, WithLogger(logger))
	testutil.ExpectJSONEq(t, Convert(input), got)

	out := buf.String()
	for _, want := range []string{"normalized", "tokenized", "built", "dropped definition without name"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestParseReader(t *testing.T) {
	got, err := ParseReader(context.Background(), strings.NewReader("login(name: string)\nlogoff"))
	if err != nil {
		t.Fatalf("ParseReader() error = %v", err)
	}

	testutil.ExpectJSONEq(t, Definitions{def("login", p("name", "string")), def("logoff")}, got)

	_, err = ParseReader(context.Background(), iotest.ErrReader(errors.New("boom")))
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("ParseReader() error = %v, want ErrReadInput", err)
	}
}
