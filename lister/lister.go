package lister

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultOutput is the output file name used when none is given.
const DefaultOutput = "all_files.txt"

type Lister struct {
	id      string
	root    string
	fsys    fs.FS
	name    string
	output  string
	exclude string
}

// Result summarizes a finished run.
type Result struct {
	Count   int
	Output  string
	Elapsed time.Duration
}

// New creates a lister for the tree under root writing to output.
// The root is validated before anything touches the output file.
func New(root string, output string) (*Lister, error) {
	if output == "" {
		output = DefaultOutput
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	err = checkRoot(absRoot)
	if err != nil {
		return nil, err
	}

	absOutput, err := filepath.Abs(output)
	if err != nil {
		return nil, err
	}

	l := &Lister{
		id:     uuid.NewString(),
		root:   absRoot,
		fsys:   os.DirFS(absRoot),
		name:   output,
		output: absOutput,
	}
	if rel, ok := within(absRoot, absOutput); ok {
		l.exclude = rel
	}
	logrus.WithField("run", l.id).Debugf("Listing %s", l)

	return l, nil
}

// Run truncates the output file and writes one line per regular file
// found under the root. The output file is flushed and closed on every
// return path, so a failed run may leave partial content behind.
func (l *Lister) Run() (*Result, error) {
	log := logrus.WithField("run", l.id)
	start := time.Now()

	file, err := os.Create(l.output)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOutputUnwritable, err)
	}
	log.Debugf("Truncated output file %s", l.output)

	buf := bufio.NewWriter(file)
	count, err := l.List(l.fsys, buf)
	if ferr := buf.Flush(); ferr != nil && err == nil {
		err = fmt.Errorf("%w: %w", ErrWrite, ferr)
	}
	if cerr := file.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("%w: %w", ErrWrite, cerr)
	}
	if err != nil {
		log.Debugf("Stopped after %d paths", count)
		return nil, err
	}

	res := &Result{
		Count:   count,
		Output:  l.output,
		Elapsed: time.Since(start),
	}
	log.Debugf("Wrote %d paths in %s", res.Count, res.Elapsed)
	log.Infof("File paths written to %s", l.name)

	return res, nil
}

// String returns a string representation of the lister.
func (l *Lister) String() string {
	return fmt.Sprintf("%s -> %s", l.root, l.output)
}

// checkRoot makes sure root is a directory that can be listed.
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrRootNotFound, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRootUnreadable, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, root)
	}

	dir, err := os.Open(root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRootUnreadable, err)
	}
	defer dir.Close()

	_, err = dir.ReadDir(1)
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrRootUnreadable, err)
	}

	return nil
}

// within reports whether path lies below root, returning its
// slash-separated relative form.
func within(root, path string) (string, bool) {
	rel, err := filepath.Rel(root, path)
	if err != nil || rel == "." {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}

	return filepath.ToSlash(rel), true
}
