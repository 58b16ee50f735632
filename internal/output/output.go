// Package output persists the generated dataset: the JSON file the front-end
// reads plus optional xz and SQLite renditions of the same quotes.
package output

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/ulikunitz/xz"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/internal/logging"
	"github.com/samuel7776/monkeytype/internal/quotes"
)

// ErrLocked is returned when another process holds the output lock.
var ErrLocked = errors.New("output file is locked by another process")

var xzNewWriter = xz.NewWriter

// Options selects the files written by Write.
type Options struct {
	// Path is the JSON dataset path.
	Path string
	// XZ also writes Path+".xz".
	XZ bool
	// SQLitePath, when set, exports the quotes to a SQLite database.
	SQLitePath string
	// Bands label quotes in the SQLite export. Defaults to quotes.DefaultBands.
	Bands []quotes.Band
}

// Result describes what Write produced.
type Result struct {
	Path       string
	Bytes      int
	BLAKE3     string
	XZPath     string
	XZBytes    int
	SQLitePath string
}

// Write encodes doc and stores it at opts.Path while holding an advisory lock
// on opts.Path+".lock". Any error is fatal for the run.
func Write(ctx context.Context, doc quotes.Document, opts Options) (*Result, error) {
	if opts.Path == "" {
		return nil, qerrors.NewValidation("path", "", "output path is required")
	}
	data, err := doc.Bytes()
	if err != nil {
		return nil, qerrors.Wrap(err, "encode dataset")
	}

	release, err := lock(ctx, opts.Path)
	if err != nil {
		return nil, err
	}
	defer release()

	if err := writeAtomic(opts.Path, data); err != nil {
		return nil, err
	}
	res := &Result{
		Path:   opts.Path,
		Bytes:  len(data),
		BLAKE3: Digest(data),
	}
	logging.InfoContext(ctx, "dataset written",
		"path", res.Path,
		"bytes", res.Bytes,
		"quotes", len(doc.Quotes),
		"blake3", res.BLAKE3)

	if opts.XZ {
		compressed, err := Compress(data)
		if err != nil {
			return nil, qerrors.NewIO("compress", opts.Path, err)
		}
		xzPath := opts.Path + ".xz"
		if err := writeAtomic(xzPath, compressed); err != nil {
			return nil, err
		}
		res.XZPath = xzPath
		res.XZBytes = len(compressed)
		logging.DebugContext(ctx, "xz companion written", "path", xzPath, "bytes", len(compressed))
	}

	if opts.SQLitePath != "" {
		bands := opts.Bands
		if len(bands) == 0 {
			bands = quotes.DefaultBands
		}
		if err := ExportSQLite(ctx, opts.SQLitePath, doc, bands, res.BLAKE3); err != nil {
			return nil, err
		}
		res.SQLitePath = opts.SQLitePath
	}

	return res, nil
}

// lock takes the advisory lock for path and returns its release func.
func lock(ctx context.Context, path string) (func(), error) {
	lockPath := path + ".lock"
	if err := osMkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return nil, qerrors.NewIO("create directory", filepath.Dir(lockPath), err)
	}
	fl := flock.New(lockPath)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, qerrors.NewIO("acquire lock", lockPath, err)
	}
	if !ok {
		return nil, qerrors.NewIO("acquire lock", lockPath, ErrLocked)
	}
	return func() {
		if err := fl.Unlock(); err != nil {
			logging.WarnContext(ctx, "failed to release output lock", "path", lockPath, "error", err)
		}
		os.Remove(lockPath)
	}, nil
}

// Compress returns data in xz format.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := xzNewWriter(&buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
