// Package query selects definitions with boolean expressions written in the
// expr language.
//
// Each definition is exposed to the expression through these variables:
//
//	name        string      definition name
//	pascal      string      name with its first letter upper-cased
//	arity       int         number of parameters
//	parameters  []{name, type}
//	types       []string    parameter types in order
//	typed       bool        every parameter has an explicit type
//
// For example:
//
//	arity > 0 && name startsWith "log"
//	any(parameters, .type == "string")
//	"Device" in types
package query

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/ardnew/evdef/def"
)

var (
	ErrCompile  = def.NewError("filter compilation failed")
	ErrEvaluate = def.NewError("filter evaluation failed")
)

// Param is a parameter as seen by an expression.
type Param struct {
	Name string `expr:"name"`
	Type string `expr:"type"`
}

// Env is the evaluation environment of one definition.
type Env struct {
	Name       string   `expr:"name"`
	Pascal     string   `expr:"pascal"`
	Arity      int      `expr:"arity"`
	Parameters []Param  `expr:"parameters"`
	Types      []string `expr:"types"`
	Typed      bool     `expr:"typed"`
}

// NewEnv returns the environment describing d.
func NewEnv(d def.Definition) Env {
	env := Env{
		Name:       d.Name,
		Pascal:     d.PascalName(),
		Arity:      d.Arity(),
		Parameters: make([]Param, len(d.Parameters)),
		Types:      make([]string, len(d.Parameters)),
		Typed:      true,
	}

	for i, p := range d.Parameters {
		env.Parameters[i] = Param{Name: p.Name, Type: p.Type}
		env.Types[i] = p.Type
		env.Typed = env.Typed && p.Typed()
	}

	return env
}

// Filter is a compiled selection expression. The zero Filter matches every
// definition.
type Filter struct {
	source  string
	program *vm.Program
}

// Compile compiles source into a [Filter]. The expression must evaluate to a
// boolean. A blank source compiles to a filter that matches everything.
func Compile(source string) (*Filter, error) {
	if strings.TrimSpace(source) == "" {
		return &Filter{}, nil
	}

	program, err := expr.Compile(source, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, ErrCompile.Wrap(err).With(slog.String("source", source))
	}

	return &Filter{source: source, program: program}, nil
}

// MustCompile is like [Compile] but panics on error.
func MustCompile(source string) *Filter {
	f, err := Compile(source)
	if err != nil {
		panic(err)
	}

	return f
}

// String returns the source of the filter.
func (f *Filter) String() string { return f.source }

// Match reports whether d satisfies the filter.
func (f *Filter) Match(d def.Definition) (bool, error) {
	if f == nil || f.program == nil {
		return true, nil
	}

	out, err := vm.Run(f.program, NewEnv(d))
	if err != nil {
		return false, ErrEvaluate.Wrap(err).With(
			slog.String("source", f.source),
			slog.String("definition", d.Name))
	}

	ok, _ := out.(bool)

	return ok, nil
}

// Select returns the definitions that satisfy the filter, in order.
func (f *Filter) Select(defs def.Definitions) (def.Definitions, error) {
	out := make(def.Definitions, 0, len(defs))

	for _, d := range defs {
		ok, err := f.Match(d)
		if err != nil {
			return nil, err
		}

		if ok {
			out = append(out, d)
		}
	}

	return out, nil
}
