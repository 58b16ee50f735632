// Package sqlite opens the SQLite databases the quote export writes.
//
// The pure Go driver (modernc.org/sqlite) is linked by default. Building with
// -tags cgo_sqlite and CGO_ENABLED=1 links mattn/go-sqlite3 instead. Callers
// never name a driver; they go through Create, Open and OpenReadOnly.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
)

// buildPragmas speed up a one-shot export. A crash mid-build leaves a
// temporary file that the next run replaces, so durability is not needed.
var buildPragmas = []string{
	"PRAGMA journal_mode = MEMORY",
	"PRAGMA synchronous = OFF",
	"PRAGMA foreign_keys = ON",
}

// Driver describes the linked SQLite implementation.
type Driver struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Package string `json:"package"`
}

// CGO reports whether the driver needs cgo.
func (d Driver) CGO() bool {
	return d.Type == "cgo"
}

// LinkedDriver returns the SQLite implementation this binary was built with.
func LinkedDriver() Driver {
	return Driver{Name: driverName, Type: driverType, Package: driverPackage}
}

// Open opens the database at path, creating it if needed, and checks that it
// is usable. The pool is limited to one connection since SQLite allows a
// single writer.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// OpenReadOnly opens an existing database without write access.
func OpenReadOnly(ctx context.Context, path string) (*sql.DB, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	return Open(ctx, "file:"+path+"?mode=ro")
}

// Create opens a fresh database at path, removing any existing file first,
// and applies pragmas suited to a bulk build.
func Create(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	db, err := Open(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, pragma := range buildPragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
