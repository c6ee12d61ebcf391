package def

import (
	"slices"
	"strings"
)

// Build folds one token group into a [Definition].
//
// The last Name token sets the name. Each Parameter token appends a
// parameter of [DefaultType]; a Type token replaces the type of the most
// recent parameter and is ignored when there is none. Text is trimmed, and an
// empty type falls back to [DefaultType]. Parameters left without a name are
// dropped.
func Build(group []Token) Definition {
	d := Definition{Parameters: make([]Parameter, 0, countKind(group, KindParameter))}

	for _, t := range group {
		switch t.Kind {
		case KindName:
			d.Name = strings.TrimSpace(t.Text)

		case KindParameter:
			d.Parameters = append(d.Parameters, NewParameter(t.Text, ""))

		case KindType:
			if n := len(d.Parameters); n > 0 {
				d.Parameters[n-1].Type = typeOrDefault(t.Text)
			}
		}
	}

	d.Parameters = slices.DeleteFunc(d.Parameters, func(p Parameter) bool {
		return p.Name == ""
	})

	return d
}

func countKind(tokens []Token, kind TokenKind) int {
	n := 0

	for _, t := range tokens {
		if t.Kind == kind {
			n++
		}
	}

	return n
}

func typeOrDefault(text string) string {
	if t := strings.TrimSpace(text); t != "" {
		return t
	}

	return DefaultType
}
