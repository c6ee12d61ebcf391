package cmd

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/klauspost/readahead"
)

// StdinName is the path that selects standard input.
const StdinName = "-"

//nolint:gochecknoglobals
var stdin io.Reader = os.Stdin

// Input is one named source of definitions.
type Input struct {
	Name string
	open func() (io.ReadCloser, error)
}

// Open returns a reader over the content of in.
func (in Input) Open() (io.ReadCloser, error) {
	rc, err := in.open()
	if err != nil {
		return nil, ErrOpenSource.Wrap(err).With(slog.String("source", in.Name))
	}

	return rc, nil
}

// ReadString returns the whole content of in.
func (in Input) ReadString() (string, error) {
	rc, err := in.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	ra := readahead.NewReader(rc)
	defer ra.Close()

	var b strings.Builder
	if _, err := io.Copy(&b, ra); err != nil {
		return "", ErrOpenSource.Wrap(err).With(slog.String("source", in.Name))
	}

	return b.String(), nil
}

// Inputs is an ordered list of sources without duplicates.
type Inputs []Input

// Names returns the name of every input in order.
func (ins Inputs) Names() []string {
	names := make([]string, len(ins))
	for i, in := range ins {
		names[i] = in.Name
	}

	return names
}

// Open returns one reader over all inputs in order. A newline separates
// consecutive inputs so the last line of one never joins the first line of
// the next.
func (ins Inputs) Open() (io.ReadCloser, error) {
	var m multiReadCloser

	for i, in := range ins {
		rc, err := in.Open()
		if err != nil {
			_ = m.Close()

			return nil, err
		}

		if i > 0 {
			m.readers = append(m.readers, strings.NewReader("\n"))
		}

		m.readers = append(m.readers, rc)
		m.closers = append(m.closers, rc)
	}

	m.Reader = io.MultiReader(m.readers...)

	return &m, nil
}

type multiReadCloser struct {
	io.Reader

	readers []io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var errs []error
	for _, c := range m.closers {
		errs = append(errs, c.Close())
	}

	return errors.Join(errs...)
}

// fileKey identifies a file by device and inode, so one file reached by
// different paths or through symlinks is read only once.
type fileKey struct {
	dev uint64
	ino uint64
}

func makeFileKey(info os.FileInfo) (fileKey, bool) {
	if info == nil {
		return fileKey{}, false
	}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fileKey{}, false
	}

	return fileKey{dev: uint64(stat.Dev), ino: stat.Ino}, true //nolint:unconvert
}

// ResolveInputs returns the inputs named by paths. Repeated files are kept
// once, at their first position. Every occurrence of [StdinName] collapses
// into a single stdin input placed last. With no paths the only input is
// stdin.
func ResolveInputs(paths ...string) (Inputs, error) {
	if len(paths) == 0 {
		return Inputs{stdinInput()}, nil
	}

	var (
		ins      = make(Inputs, 0, len(paths))
		seen     = make(map[fileKey]struct{}, len(paths))
		useStdin bool
	)

	stdinKey, hasStdinKey := fileKey{}, false
	if f, ok := stdin.(*os.File); ok {
		info, _ := f.Stat()
		stdinKey, hasStdinKey = makeFileKey(info)
	}

	for _, path := range paths {
		if path == StdinName {
			useStdin = true

			continue
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err).With(slog.String("source", path))
		}

		info, err := os.Stat(resolved)
		if err != nil {
			return nil, ErrOpenSource.Wrap(err).With(slog.String("source", path))
		}

		if key, ok := makeFileKey(info); ok {
			if hasStdinKey && key == stdinKey {
				useStdin = true

				continue
			}

			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
		}

		ins = append(ins, fileInput(path, resolved))
	}

	if useStdin {
		ins = append(ins, stdinInput())
	}

	return ins, nil
}

func fileInput(name, path string) Input {
	return Input{
		Name: name,
		open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

func stdinInput() Input {
	return Input{
		Name: "<stdin>",
		open: func() (io.ReadCloser, error) { return io.NopCloser(stdin), nil },
	}
}
