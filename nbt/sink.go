package nbt

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/renameio/v2"
)

// Stdout is the path that selects standard output in Create.
const Stdout = "-"

// Create opens a writer on the file at path, or on standard output when
// path is Stdout.
//
// Files are written to a temporary sibling and renamed over path when
// Close succeeds, so an interrupted or failed write never leaves a
// truncated document behind. Standard output is flushed on Close but
// not closed.
func Create(path string, opts ...Option) (*Writer, error) {
	if path == "" {
		return nil, errors.New("empty output path")
	}
	if path == Stdout {
		return NewWriter(os.Stdout, opts...), nil
	}
	f, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return nil, fmt.Errorf("could not create %q: %w", path, err)
	}
	w := New(opts...)
	w.Open(f)
	w.release = func(ok bool) error {
		if !ok {
			return f.Cleanup()
		}
		if err := f.CloseAtomicallyReplace(); err != nil {
			return fmt.Errorf("could not write %q: %w", path, err)
		}
		return nil
	}
	return w, nil
}
