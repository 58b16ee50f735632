package output

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/flock"
	"github.com/ulikunitz/xz"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/core/sqlite"
	"github.com/samuel7776/monkeytype/internal/quotes"
)

func sampleDoc() quotes.Document {
	return quotes.Assemble(quotes.DefaultLanguage, quotes.DefaultBands, []quotes.Quote{
		quotes.New("Jesus wept.", "John 11:35"),
		quotes.New("The LORD is my shepherd; I shall not want.", "Psalm 23:1"),
	})
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static", "quotes", "english.json")
	doc := sampleDoc()

	res, err := Write(context.Background(), doc, Options{Path: path})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want, _ := doc.Bytes()
	if !bytes.Equal(data, want) {
		t.Errorf("file content differs from encoded document")
	}
	if res.Bytes != len(data) {
		t.Errorf("Result.Bytes = %d, want %d", res.Bytes, len(data))
	}
	if res.BLAKE3 != Digest(data) || len(res.BLAKE3) != 64 {
		t.Errorf("Result.BLAKE3 = %q", res.BLAKE3)
	}
	if res.XZPath != "" || res.SQLitePath != "" {
		t.Errorf("unexpected companions: %+v", res)
	}

	if _, err := os.Stat(path + ".lock"); !os.IsNotExist(err) {
		t.Errorf("lock file left behind: %v", err)
	}
	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Errorf("expected only the dataset in the directory, got %d entries", len(entries))
	}
}

func TestWriteIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.json")
	first, err := Write(context.Background(), sampleDoc(), Options{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	second, err := Write(context.Background(), sampleDoc(), Options{Path: path})
	if err != nil {
		t.Fatal(err)
	}
	if first.BLAKE3 != second.BLAKE3 {
		t.Errorf("digest changed between identical runs: %s != %s", first.BLAKE3, second.BLAKE3)
	}
}

func TestWriteRequiresPath(t *testing.T) {
	_, err := Write(context.Background(), sampleDoc(), Options{})
	var ve *qerrors.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("Write() error = %v, want ValidationError", err)
	}
}

func TestWriteXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.json")
	res, err := Write(context.Background(), sampleDoc(), Options{Path: path, XZ: true})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if res.XZPath != path+".xz" {
		t.Errorf("XZPath = %q", res.XZPath)
	}

	f, err := os.Open(res.XZPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	r, err := xz.NewReader(f)
	if err != nil {
		t.Fatalf("xz.NewReader() error: %v", err)
	}
	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := os.ReadFile(path)
	if !bytes.Equal(got, want) {
		t.Error("decompressed companion differs from dataset")
	}
}

func TestWriteLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "english.json")
	held := flock.New(path + ".lock")
	ok, err := held.TryLock()
	if err != nil || !ok {
		t.Fatalf("TryLock() = %v, %v", ok, err)
	}
	defer held.Unlock()

	_, err = Write(context.Background(), sampleDoc(), Options{Path: path})
	if !errors.Is(err, ErrLocked) {
		t.Fatalf("Write() error = %v, want ErrLocked", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("dataset written despite held lock")
	}
}

func TestWriteErrorInjection(t *testing.T) {
	injected := errors.New("injected error")

	tests := []struct {
		name  string
		setup func() func()
		op    string
	}{
		{
			name: "write",
			setup: func() func() {
				orig := tempFileWrite
				tempFileWrite = func(*os.File, []byte) (int, error) { return 0, injected }
				return func() { tempFileWrite = orig }
			},
			op: "write",
		},
		{
			name: "close",
			setup: func() func() {
				orig := tempFileClose
				tempFileClose = func(f *os.File) error { f.Close(); return injected }
				return func() { tempFileClose = orig }
			},
			op: "close",
		},
		{
			name: "rename",
			setup: func() func() {
				orig := osRename
				osRename = func(string, string) error { return injected }
				return func() { osRename = orig }
			},
			op: "rename",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := tt.setup()
			defer restore()

			dir := t.TempDir()
			path := filepath.Join(dir, "english.json")
			_, err := Write(context.Background(), sampleDoc(), Options{Path: path})

			var ioErr *qerrors.IOError
			if !errors.As(err, &ioErr) {
				t.Fatalf("Write() error = %v, want IOError", err)
			}
			if ioErr.Operation != tt.op {
				t.Errorf("Operation = %q, want %q", ioErr.Operation, tt.op)
			}
			if !errors.Is(err, injected) {
				t.Errorf("error chain lost the cause: %v", err)
			}

			entries, _ := os.ReadDir(dir)
			if len(entries) != 0 {
				t.Errorf("temp files left behind: %d entries", len(entries))
			}
		})
	}
}

func TestCompressError(t *testing.T) {
	orig := xzNewWriter
	xzNewWriter = func(io.Writer) (*xz.Writer, error) { return nil, errors.New("no xz") }
	defer func() { xzNewWriter = orig }()

	path := filepath.Join(t.TempDir(), "english.json")
	if _, err := Write(context.Background(), sampleDoc(), Options{Path: path, XZ: true}); err == nil {
		t.Error("Write() expected compress error")
	}
}

func TestExportSQLite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "english.json")
	dbPath := filepath.Join(dir, "english.db")
	doc := sampleDoc()

	res, err := Write(context.Background(), doc, Options{Path: path, SQLitePath: dbPath})
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if res.SQLitePath != dbPath {
		t.Errorf("SQLitePath = %q", res.SQLitePath)
	}
	if _, err := os.Stat(dbPath + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary database left behind")
	}

	db, err := sqlite.OpenReadOnly(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("OpenReadOnly() error: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != len(doc.Quotes) {
		t.Errorf("quotes rows = %d, want %d", count, len(doc.Quotes))
	}

	var text, source, band string
	var length int
	err = db.QueryRow(`SELECT text, source, length, band FROM quotes WHERE id = 2`).Scan(&text, &source, &length, &band)
	if err != nil {
		t.Fatal(err)
	}
	if source != "Psalm 23:1" || length != 42 || band != "short" {
		t.Errorf("row 2 = %q %q %d %q", text, source, length, band)
	}

	var groups int
	if err := db.QueryRow(`SELECT COUNT(*) FROM "groups"`).Scan(&groups); err != nil {
		t.Fatal(err)
	}
	if groups != len(quotes.DefaultBands) {
		t.Errorf("groups rows = %d", groups)
	}

	var digest string
	if err := db.QueryRow(`SELECT value FROM meta WHERE key = 'json_blake3'`).Scan(&digest); err != nil {
		t.Fatal(err)
	}
	if digest != res.BLAKE3 {
		t.Errorf("meta json_blake3 = %q, want %q", digest, res.BLAKE3)
	}
}

func TestExportSQLiteReplacesExisting(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "english.db")
	ctx := context.Background()

	if err := ExportSQLite(ctx, dbPath, sampleDoc(), quotes.DefaultBands, "a"); err != nil {
		t.Fatal(err)
	}
	smaller := quotes.Assemble(quotes.DefaultLanguage, quotes.DefaultBands, []quotes.Quote{quotes.New("x", "X 1:1")})
	if err := ExportSQLite(ctx, dbPath, smaller, quotes.DefaultBands, "b"); err != nil {
		t.Fatalf("second export error: %v", err)
	}

	db, err := sqlite.OpenReadOnly(ctx, dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM quotes`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("quotes rows = %d, want 1", count)
	}
}

func TestDigest(t *testing.T) {
	// BLAKE3 of the empty input.
	const empty = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
	if got := Digest(nil); got != empty {
		t.Errorf("Digest(nil) = %s", got)
	}
	if Digest([]byte("a")) == Digest([]byte("b")) {
		t.Error("distinct inputs share a digest")
	}
}
