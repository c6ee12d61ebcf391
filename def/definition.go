package def

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultType is the type of a parameter declared without a type annotation
// or with an empty one.
const DefaultType = "unknown"

// Parameter is one entry of a definition's parameter list.
type Parameter struct {
	Name string `json:"name"     yaml:"name"`
	Type string `json:"dataType" yaml:"dataType"`
}

// NewParameter returns a Parameter with trimmed name and type. An empty type
// resolves to [DefaultType].
func NewParameter(name, typ string) Parameter {
	return Parameter{Name: strings.TrimSpace(name), Type: typeOrDefault(typ)}
}

// Typed reports whether p carries an explicit type.
func (p Parameter) Typed() bool { return p.Type != DefaultType }

func (p Parameter) String() string {
	if !p.Typed() {
		return p.Name
	}

	return p.Name + ": " + p.Type
}

// Definition is a named event or command with its ordered parameters.
// Parameter names need not be unique.
type Definition struct {
	Name       string      `json:"name"       yaml:"name"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// String returns d in canonical notation, for example "login(name: string,
// device)". The parameter list is omitted when empty and untyped parameters
// carry no annotation.
func (d Definition) String() string {
	if len(d.Parameters) == 0 {
		return d.Name
	}

	var b strings.Builder

	b.WriteString(d.Name)
	b.WriteByte('(')

	for i, p := range d.Parameters {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(p.String())
	}

	b.WriteByte(')')

	return b.String()
}

// PascalName returns the name with its first rune upper-cased, the form used
// for generated type names. The rest of the name is unchanged.
func (d Definition) PascalName() string {
	return PascalCase(d.Name)
}

// Arity returns the number of parameters.
func (d Definition) Arity() int { return len(d.Parameters) }

// Clone returns a copy of d that shares no memory with it.
func (d Definition) Clone() Definition {
	d.Parameters = slices.Clone(d.Parameters)
	if d.Parameters == nil {
		d.Parameters = []Parameter{}
	}

	return d
}

// Definitions is an ordered list of definitions in source order.
type Definitions []Definition

// Names returns the definition names in order, duplicates included.
func (ds Definitions) Names() []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}

	return names
}

// Lookup returns the first definition named name.
func (ds Definitions) Lookup(name string) (Definition, bool) {
	i := slices.IndexFunc(ds, func(d Definition) bool { return d.Name == name })
	if i < 0 {
		return Definition{}, false
	}

	return ds[i], true
}

// Clone returns a deep copy of ds.
func (ds Definitions) Clone() Definitions {
	if ds == nil {
		return nil
	}

	out := make(Definitions, len(ds))
	for i, d := range ds {
		out[i] = d.Clone()
	}

	return out
}

// PascalCase upper-cases the first rune of s.
func PascalCase(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || r == utf8.RuneError {
		return s
	}

	u := unicode.ToUpper(r)
	if u == r {
		return s
	}

	return string(u) + s[n:]
}
