// Package pkg describes the evdef project itself: its name, version and
// authors, and the per-user directories derived from them.
//
//nolint:gochecknoglobals
package pkg

import (
	_ "embed"
	"strings"
)

//go:embed VERSION
var version string

// Version is the semantic version of the module, read from the VERSION file
// at build time.
var Version = strings.TrimSpace(version)

const (
	// Name is the command name and the base name of per-user directories.
	Name = "evdef"
	// Description is the one-line summary shown in help output.
	Description = "Event and command definition parser"
)

// AuthorInfo identifies one author.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary authors of the project.
var Author = []AuthorInfo{
	{"ardnew", "andrew@ardnew.com"},
}
