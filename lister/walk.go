package lister

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"kr.dev/walk"
)

// List walks fsys from its root and writes the path of every regular
// file to w, one per line, using host separators. Directories are
// descended into but not written; symlinks and other special entries
// are skipped and never followed. Entries are visited in lexical order.
func (l *Lister) List(fsys fs.FS, w io.Writer) (int, error) {
	count := 0

	walker := walk.New(fsys, ".")
	for walker.Next() {
		path := walker.Path()
		if err := walker.Err(); err != nil {
			return count, fmt.Errorf("%w: %s: %w", ErrWalk, path, err)
		}

		entry := walker.Entry()
		if entry.IsDir() {
			continue
		}
		if !entry.Type().IsRegular() {
			logrus.Debugf("Skipping %s (%s)", path, entry.Type())
			continue
		}
		if path == l.exclude {
			continue
		}

		_, err := io.WriteString(w, filepath.FromSlash(path)+"\n")
		if err != nil {
			return count, fmt.Errorf("%w: %w", ErrWrite, err)
		}
		count++
	}

	return count, nil
}
