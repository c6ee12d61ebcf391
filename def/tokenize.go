package def

import "strings"

// Tokenize scans normalized definitions text into tokens.
//
// The scanner is a state machine whose state is the kind of the token under
// construction: Name, Parameter, Type or EndParams. It reads one rune at a
// time with no lookahead. Each token tracks a brace depth: '{' raises it and
// '}' lowers it, with no lower bound. At depth zero blanks (space, tab and
// newline) are left out of token text and a comma ends a Type; at any other
// depth, negative included, both are kept as text.
//
// The result always ends with the token that was under construction when the
// input ran out, even if it is empty. A brace left open at that point stays
// part of the final token's text.
func Tokenize(normalized string) []Token {
	s := scanner{
		tokens: make([]Token, 0, len(normalized)/4+1),
		kind:   KindName,
	}

	for _, r := range normalized {
		s.step(r)
	}

	return append(s.tokens, s.current())
}

type scanner struct {
	tokens []Token
	text   strings.Builder
	kind   TokenKind
	depth  int
}

func (s *scanner) step(r rune) {
	switch s.kind {
	case KindName:
		switch r {
		case '\n':
			s.finish(KindName)
		case '(':
			s.finish(KindParameter, Token{Kind: KindStartParams})
		default:
			s.absorb(r)
		}

	case KindParameter:
		switch r {
		case ')':
			s.finish(KindEndParams)
		case ',':
			s.finish(KindParameter)
		case ':':
			s.finish(KindType)
		default:
			s.absorb(r)
		}

	case KindType:
		switch {
		case r == ')':
			s.finish(KindEndParams)
		case r == ',' && s.depth == 0:
			s.finish(KindParameter)
		default:
			s.absorb(r)
		}

	case KindEndParams:
		// Any rune closes the parameter list and begins the next name, so
		// definitions may follow ")" without a separator.
		s.finish(KindName)
		s.seed(r)
	}
}

// absorb adds r to the current token.
func (s *scanner) absorb(r rune) {
	if s.depth != 0 || !isBlank(r) {
		s.text.WriteRune(r)
	}

	switch r {
	case '{':
		s.depth++
	case '}':
		s.depth--
	}
}

// seed starts the current token with r, kept even when it is blank.
func (s *scanner) seed(r rune) {
	s.text.WriteRune(r)

	if r == '{' {
		s.depth = 1
	}
}

// finish appends the current token and any markers, then starts an empty
// token of kind next.
func (s *scanner) finish(next TokenKind, markers ...Token) {
	s.tokens = append(s.tokens, s.current())
	s.tokens = append(s.tokens, markers...)

	s.text.Reset()
	s.kind = next
	s.depth = 0
}

func (s *scanner) current() Token {
	return Token{Kind: s.kind, Text: s.text.String(), Depth: s.depth}
}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
