package output

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
)

// Variables for testing - allows injection of errors.
var (
	osRename      = os.Rename
	osMkdirAll    = os.MkdirAll
	tempFileWrite = func(f *os.File, data []byte) (int, error) { return f.Write(data) }
	tempFileClose = func(f *os.File) error { return f.Close() }
)

// writeAtomic writes data to a temp file next to path and renames it into
// place, so readers never observe a partially written file.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := osMkdirAll(dir, 0o755); err != nil {
		return qerrors.NewIO("create directory", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return qerrors.NewIO("create temp file", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tempFileWrite(tmp, data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return qerrors.NewIO("write", tmpPath, err)
	}
	if err := tempFileClose(tmp); err != nil {
		os.Remove(tmpPath)
		return qerrors.NewIO("close", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return qerrors.NewIO("chmod", tmpPath, err)
	}
	if err := osRename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return qerrors.NewIO("rename", path, err)
	}
	return nil
}

// Digest returns the hex-encoded BLAKE3-256 hash of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
