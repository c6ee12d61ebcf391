// Package cmd implements the evdef subcommands.
//
// Every command reads its definitions from the inputs named on the command
// line, from the global --source flag, or from stdin when neither names
// anything. Output goes to the writer installed with [WithOutput].
package cmd

var (
	// CacheIdentifier is the kong variable holding the runtime cache
	// directory.
	CacheIdentifier = "cache"

	// ConfigIdentifier is the kong variable holding the path of the YAML
	// configuration file written by [Init].
	ConfigIdentifier = "config"

	// FormatEnumIdentifier is the kong variable listing the output formats.
	FormatEnumIdentifier = "formatEnum"
)
