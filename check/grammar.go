package check

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ardnew/evdef/def"
)

// Newlines separate definitions at the top level only. Inside a parameter
// list they are ordinary whitespace.
var definitionLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Newline", `\n`, nil},
		{"Whitespace", `[ \t\r\f\v]+`, nil},
		{"Open", `\(`, lexer.Push("Params")},
		{"Punct", `[),:{}]`, nil},
		{"Word", `[^\s(),:{}]+`, nil},
	},
	"Params": {
		{"Whitespace", `\s+`, nil},
		{"Close", `\)`, lexer.Pop()},
		{"Punct", `[(,:{}]`, nil},
		{"Word", `[^\s(),:{}]+`, nil},
	},
})

var parser = participle.MustBuild[File](
	participle.Lexer(definitionLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// File is a definitions source accepted by the strict grammar.
type File struct {
	Pos     lexer.Position
	Entries []*Entry `Newline* ( @@ Newline* )*`
}

// Entry is one definition. A name split by blanks is still one entry, as the
// lenient parser joins the pieces.
type Entry struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Words  []string   `@Word+`
	Params *ParamList `@@?`
}

// Name returns the name the lenient parser reads for e.
func (e *Entry) Name() string { return strings.Join(e.Words, "") }

// ParamList holds the slots between the parentheses. Slot zero is First;
// every comma opens another.
type ParamList struct {
	Pos    lexer.Position
	EndPos lexer.Position
	First  *Param  `"(" @@?`
	Rest   []*Slot `@@* ")"`
}

type Slot struct {
	Pos   lexer.Position
	Comma string `@","`
	Param *Param `@@?`
}

type Param struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Words  []string  `@Word+`
	Colon  string    `( @":"`
	Type   *TypeExpr `  @@? )?`
}

func (p *Param) Name() string { return strings.Join(p.Words, "") }

type TypeExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Parts  []*TypePart `@@+`
}

type TypePart struct {
	Text  string `  @(Word | ":")`
	Brace *Brace `| @@`
}

// Brace is a balanced "{...}" group. Commas and colons inside it belong to
// the type.
type Brace struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Items  []*BraceItem `"{" @@* "}"`
}

type BraceItem struct {
	Text  string `  @(Word | ":" | ",")`
	Brace *Brace `| @@`
}

// Names returns the entry names in source order.
func (f *File) Names() []string {
	names := make([]string, len(f.Entries))
	for i, e := range f.Entries {
		names[i] = e.Name()
	}

	return names
}

// Parse parses src with the strict grammar. Comment lines are blanked first,
// keeping every offset, line and column of the remaining text.
func Parse(filename, src string) (*File, error) {
	return parser.ParseString(filename, blankComments(src))
}

func blankComments(src string) string {
	var b strings.Builder

	b.Grow(len(src))

	for i, line := range strings.Split(src, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}

		trimmed := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if !strings.HasPrefix(trimmed, def.CommentPrefix) {
			b.WriteString(line)

			continue
		}

		b.WriteString(strings.Repeat(" ", len(line)))
	}

	return b.String()
}
