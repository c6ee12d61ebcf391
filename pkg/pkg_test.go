package pkg

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestIdentity(t *testing.T) {
	if Name != "evdef" {
		t.Errorf("Name = %q", Name)
	}

	if Description == "" {
		t.Error("Description is empty")
	}

	if len(Author) == 0 || Author[0].Name == "" {
		t.Error("Author is empty")
	}
}

func TestVersion(t *testing.T) {
	semver := regexp.MustCompile(`^\d+\.\d+\.\d+(-[0-9A-Za-z.-]+)?$`)
	if !semver.MatchString(Version) {
		t.Errorf("Version = %q, not a semantic version", Version)
	}
}

func TestPrefixOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/usr/local/bin/evdef", "evdef"},
		{"/tmp/__debug_bin1234", Name},
		{"/home/u/.evdef", "evdef"},
		{`C:\bin\evdef.exe`, "evdef"},
		{"/x/...", Name},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			path := tt.path
			if strings.Contains(path, `\`) {
				path = filepath.Base(strings.ReplaceAll(path, `\`, "/"))
			}

			if got := prefixOf(path); got != tt.want {
				t.Errorf("prefixOf(%q) = %q, want %q", path, got, tt.want)
			}
		})
	}
}

func TestUserDirs(t *testing.T) {
	for name, dir := range map[string]func() string{
		"config": ConfigDir,
		"cache":  CacheDir,
	} {
		if got := filepath.Base(dir()); got != Prefix() {
			t.Errorf("%s dir %q does not end in %q", name, dir(), Prefix())
		}
	}
}
