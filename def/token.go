package def

import "strconv"

// TokenKind classifies a [Token].
type TokenKind uint8

const (
	KindName TokenKind = iota
	KindStartParams
	KindEndParams
	KindParameter
	KindType
)

func (k TokenKind) String() string {
	switch k {
	case KindName:
		return "Name"
	case KindStartParams:
		return "StartParams"
	case KindEndParams:
		return "EndParams"
	case KindParameter:
		return "Parameter"
	case KindType:
		return "Type"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Token is one classified span of definitions text.
//
// Depth is the count of '{' minus the count of '}' absorbed by the token. A
// closing parenthesis ends a Type even inside braces, so a positive depth
// marks an unbalanced type or a token cut off by the end of input. A
// negative depth follows a stray '}'.
type Token struct {
	Kind  TokenKind
	Text  string
	Depth int
}

func (t Token) String() string {
	return t.Kind.String() + "(" + strconv.Quote(t.Text) + ")"
}
