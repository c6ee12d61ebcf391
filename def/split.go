package def

// Split partitions tokens into one group per definition. Every Name token
// after the first position starts a new group; the first group starts at
// index zero whatever its kind. Each token lands in exactly one group.
//
// Groups share the backing array of tokens but have their capacity clipped,
// so appending to one group never overwrites the next.
func Split(tokens []Token) [][]Token {
	if len(tokens) == 0 {
		return nil
	}

	var groups [][]Token

	start := 0

	for i := 1; i < len(tokens); i++ {
		if tokens[i].Kind == KindName {
			groups = append(groups, tokens[start:i:i])
			start = i
		}
	}

	return append(groups, tokens[start:len(tokens):len(tokens)])
}
