package output

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strconv"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/core/sqlite"
	"github.com/samuel7776/monkeytype/internal/logging"
	"github.com/samuel7776/monkeytype/internal/quotes"
)

const schema = `
CREATE TABLE meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE "groups" (
	position   INTEGER PRIMARY KEY,
	name       TEXT NOT NULL,
	min_length INTEGER NOT NULL,
	max_length INTEGER NOT NULL
);
CREATE TABLE quotes (
	id     INTEGER PRIMARY KEY,
	text   TEXT NOT NULL,
	source TEXT NOT NULL,
	length INTEGER NOT NULL,
	band   TEXT NOT NULL
);
CREATE INDEX idx_quotes_band ON quotes(band);
`

// ExportSQLite writes doc to a fresh SQLite database at path. The database is
// built under a temporary name and renamed into place once complete.
func ExportSQLite(ctx context.Context, path string, doc quotes.Document, bands []quotes.Band, digest string) error {
	dir := filepath.Dir(path)
	if err := osMkdirAll(dir, 0o755); err != nil {
		return qerrors.NewIO("create directory", dir, err)
	}
	tmpPath := path + ".tmp"

	if err := buildDatabase(ctx, tmpPath, doc, bands, digest); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := osRename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return qerrors.NewIO("rename", path, err)
	}

	logging.DebugContext(ctx, "sqlite export written",
		"path", path,
		"driver", sqlite.LinkedDriver().Type,
		"quotes", len(doc.Quotes))
	return nil
}

func buildDatabase(ctx context.Context, path string, doc quotes.Document, bands []quotes.Band, digest string) error {
	db, err := sqlite.Create(ctx, path)
	if err != nil {
		return qerrors.NewIO("open database", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return qerrors.NewIO("create schema", path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return qerrors.NewIO("begin transaction", path, err)
	}
	defer tx.Rollback()

	meta := [][2]string{
		{"language", doc.Language},
		{"quote_count", strconv.Itoa(len(doc.Quotes))},
		{"json_blake3", digest},
	}
	for _, kv := range meta {
		if _, err := tx.ExecContext(ctx, `INSERT INTO meta (key, value) VALUES (?, ?)`, kv[0], kv[1]); err != nil {
			return qerrors.NewIO("insert meta", path, err)
		}
	}

	for i, b := range bands {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO "groups" (position, name, min_length, max_length) VALUES (?, ?, ?, ?)`,
			i, b.Name, b.Min, b.Max); err != nil {
			return qerrors.NewIO("insert group", path, err)
		}
	}

	if err := insertQuotes(ctx, tx, doc.Quotes, bands); err != nil {
		return qerrors.NewIO("insert quotes", path, err)
	}

	if err := tx.Commit(); err != nil {
		return qerrors.NewIO("commit", path, err)
	}
	return nil
}

func insertQuotes(ctx context.Context, tx *sql.Tx, qs []quotes.Quote, bands []quotes.Band) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO quotes (id, text, source, length, band) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, q := range qs {
		band, _ := quotes.BandFor(bands, q.Length)
		if _, err := stmt.ExecContext(ctx, q.ID, q.Text, q.Source, q.Length, band.Name); err != nil {
			return err
		}
	}
	return nil
}
