package render

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/evdef/def"
	"github.com/ardnew/evdef/internal/testutil"
)

var defs = def.Convert(`login(name: string, device: {id: int, kind: string})
logoff(name,)
restart`)

func TestNative(t *testing.T) {
	var buf bytes.Buffer
	if err := Native(&buf, defs, 0); err != nil {
		t.Fatal(err)
	}

	testutil.ExpectNoDiff(t, `login(name: string, device: {id: int, kind: string})
logoff(name)
restart
`, buf.String())

	testutil.ExpectJSONEq(t, defs, def.Convert(buf.String()))
}

func TestNative_Indented(t *testing.T) {
	var buf bytes.Buffer
	if err := Native(&buf, defs, 2); err != nil {
		t.Fatal(err)
	}

	testutil.ExpectNoDiff(t, `login(
  name: string,
  device: {id: int, kind: string}
)
logoff(
  name
)
restart
`, buf.String())

	testutil.ExpectJSONEq(t, defs, def.Convert(buf.String()))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, defs[1:], 0); err != nil {
		t.Fatal(err)
	}

	testutil.ExpectNoDiff(t,
		`[{"name":"logoff","parameters":[{"name":"name","dataType":"unknown"}]},{"name":"restart","parameters":[]}]`+"\n",
		buf.String())

	buf.Reset()
	if err := JSON(&buf, nil, 2); err != nil {
		t.Fatal(err)
	}

	testutil.ExpectNoDiff(t, "[]\n", buf.String())
}

func TestYAML(t *testing.T) {
	for _, indent := range []int{0, 2, 4} {
		var buf bytes.Buffer
		if err := YAML(context.Background(), &buf, defs, indent); err != nil {
			t.Fatal(err)
		}

		var back def.Definitions
		if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
			t.Fatalf("indent %d: %v\n%s", indent, err, buf.String())
		}

		testutil.ExpectJSONEq(t, defs, back)

		if !strings.Contains(buf.String(), "dataType") {
			t.Errorf("indent %d: missing dataType key:\n%s", indent, buf.String())
		}
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestText(t *testing.T) {
	var buf bytes.Buffer
	if err := Text(&buf, defs); err != nil {
		t.Fatal(err)
	}

	testutil.ExpectNoDiff(t, `login Login
  name    string
  device  {id: int, kind: string}
logoff Logoff
  name  unknown
restart Restart
`, ansi.ReplaceAllString(buf.String(), ""))
}

func TestWrite(t *testing.T) {
	for name := range Formats() {
		f, err := ParseFormat(strings.ToUpper(name))
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", name, err)
		}

		if f.String() != name {
			t.Errorf("%q round-tripped to %q", name, f)
		}

		var buf bytes.Buffer
		if err := Write(context.Background(), &buf, f, defs, 2); err != nil {
			t.Errorf("Write(%s): %v", name, err)
		}

		if !strings.Contains(ansi.ReplaceAllString(buf.String(), ""), "logoff") {
			t.Errorf("Write(%s) output lacks definitions:\n%s", name, buf.String())
		}
	}

	if _, err := ParseFormat("xml"); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}

	if err := Write(context.Background(), &bytes.Buffer{}, Format(99), defs, 0); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Write(99) error = %v", err)
	}

	if got := Format(99).String(); got != "Format(99)" {
		t.Errorf("String() = %q", got)
	}
}
