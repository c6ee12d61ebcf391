// Package def parses the definitions notation: a list of named events or
// commands, each with an optional parenthesized parameter list whose entries
// may carry a type annotation.
//
//	login(name: string, device: Device)
//	logoff(name)
//	restart
//
// Types may contain brace-delimited literals that span lines; commas and
// colons inside braces belong to the type:
//
//	update(user: {
//	  first: string,
//	  last: string
//	}, force)
//
// Parsing runs in four stages, each exported for inspection and testing:
// [Normalize] strips comment lines and canonicalizes line endings,
// [Tokenize] runs a character-level state machine, [Split] groups tokens per
// definition and [Build] folds each group into a [Definition]. [Convert]
// composes them.
//
// The pipeline is total. Malformed input produces fewer or smaller
// definitions rather than an error, and every function is safe for
// concurrent use.
package def
