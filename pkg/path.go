package pkg

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
)

var (
	debugBinary = regexp.MustCompile(`^__debug_bin\d*$`)
	leadingDots = regexp.MustCompile(`^\.+`)
)

// Prefix returns the name under which per-user files are stored. It is the
// base name of the running executable without extension, except that a dlv
// debug binary maps to [Name] and leading dots are removed.
//
//nolint:gochecknoglobals
var Prefix = sync.OnceValue(func() string {
	return prefixOf(executable())
})

func executable() string {
	if exe, err := os.Executable(); err == nil {
		return exe
	}

	return os.Args[0]
}

func prefixOf(path string) string {
	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	if debugBinary.MatchString(id) {
		return Name
	}

	id = leadingDots.ReplaceAllString(id, "")
	if id == "" {
		return Name
	}

	return id
}

// ConfigDir returns the directory holding the user configuration files.
//
//nolint:gochecknoglobals
var ConfigDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// CacheDir returns the directory holding transient per-user files.
//
//nolint:gochecknoglobals
var CacheDir = sync.OnceValue(func() string {
	return userDir(os.UserCacheDir, ".cache")
})

func userDir(lookup func() (string, error), fallback string) string {
	dir, err := lookup()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if wd, werr := os.Getwd(); werr == nil {
			dir = wd
		} else {
			dir = "."
		}
	}

	return filepath.Join(dir, Prefix())
}
