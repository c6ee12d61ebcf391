package def

import (
	"encoding/json"
	"testing"
)

func TestPascalCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"overViewFish", "OverViewFish"},
		{"_verViewFish", "_verViewFish"},
		{"", ""},
		{"O", "O"},
		{"o", "O"},
		{"élan", "Élan"},
		{"\xff", "\xff"},
	}

	for _, tt := range tests {
		if got := PascalCase(tt.in); got != tt.want {
			t.Errorf("PascalCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}

	if got := def("powerOff").PascalName(); got != "PowerOff" {
		t.Errorf("PascalName() = %q", got)
	}
}

func TestDefinition_String(t *testing.T) {
	tests := []struct {
		def  Definition
		want string
	}{
		{def("login"), "login"},
		{def("login", p("name", DefaultType)), "login(name)"},
		{def("login", p("name", "string"), p("device", DefaultType)), "login(name: string, device)"},
		{def("f", p("a", "{x: int, y: int}")), "f(a: {x: int, y: int})"},
	}

	for _, tt := range tests {
		if got := tt.def.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}

		if back := Convert(tt.want); len(back) != 1 || back[0].String() != tt.want {
			t.Errorf("Convert(%q) = %v, does not round-trip", tt.want, back)
		}
	}
}

func TestDefinitions_Lookup(t *testing.T) {
	defs := Convert("a(x)\nb\na(y)")

	d, ok := defs.Lookup("a")
	if !ok || d.Parameters[0].Name != "x" {
		t.Errorf("Lookup(a) = %v, %v; want first a", d, ok)
	}

	if _, ok := defs.Lookup("missing"); ok {
		t.Error("Lookup(missing) found a definition")
	}
}

func TestDefinitions_Clone(t *testing.T) {
	defs := Convert("a(x: int)")
	clone := defs.Clone()
	clone[0].Parameters[0].Type = "string"

	if defs[0].Parameters[0].Type != "int" {
		t.Error("Clone shares parameter storage")
	}

	if Definitions(nil).Clone() != nil {
		t.Error("Clone of nil is not nil")
	}

	if c := (Definition{Name: "a"}).Clone(); c.Parameters == nil {
		t.Error("Clone left nil parameters")
	}
}

func TestDefinition_JSON(t *testing.T) {
	b, err := json.Marshal(Convert("login(name: string)\nlogoff"))
	if err != nil {
		t.Fatal(err)
	}

	want := `[{"name":"login","parameters":[{"name":"name","dataType":"string"}]},{"name":"logoff","parameters":[]}]`
	if string(b) != want {
		t.Errorf("json = %s\nwant   %s", b, want)
	}
}

func TestParameter(t *testing.T) {
	if got := NewParameter(" a ", " "); got != (Parameter{"a", DefaultType}) {
		t.Errorf("NewParameter = %#v", got)
	}

	if NewParameter("a", "").Typed() {
		t.Error("default type reported as typed")
	}

	if !NewParameter("a", "int").Typed() {
		t.Error("explicit type reported as untyped")
	}
}
