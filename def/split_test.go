package def

import (
	"slices"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   [][]Token
	}{
		{"nil", nil, nil},
		{"single", []Token{name("a")}, [][]Token{{name("a")}}},
		{
			name:   "boundary at each later name",
			tokens: []Token{name("a"), startParams, param("x"), endParams(""), name("b"), name("c")},
			want: [][]Token{
				{name("a"), startParams, param("x"), endParams("")},
				{name("b")},
				{name("c")},
			},
		},
		{
			name:   "first group need not start with a name",
			tokens: []Token{param("x"), typ("y"), name("a")},
			want:   [][]Token{{param("x"), typ("y")}, {name("a")}},
		},
		{
			name:   "trailing empty name forms its own group",
			tokens: []Token{name("a"), name("")},
			want:   [][]Token{{name("a")}, {name("")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.tokens)
			if !slices.EqualFunc(got, tt.want, slices.Equal) {
				t.Errorf("Split()\n got: %v\nwant: %v", got, tt.want)
			}
		})
	}
}

func TestSplit_Partition(t *testing.T) {
	tokens := Tokenize("a(b, c: {d, e})\nf\ng()h(i)")

	var joined []Token
	for _, g := range Split(tokens) {
		joined = append(joined, g...)
	}

	if !slices.Equal(joined, tokens) {
		t.Errorf("groups do not partition the input\n got: %v\nwant: %v", joined, tokens)
	}
}

func TestSplit_GroupsDoNotAlias(t *testing.T) {
	tokens := []Token{name("a"), param("x"), name("b")}
	groups := Split(tokens)

	_ = append(groups[0], name("overwrite"))

	if groups[1][0] != name("b") {
		t.Errorf("appending to a group overwrote the next: %v", groups[1])
	}
}
