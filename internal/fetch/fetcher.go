package fetch

import (
	"context"
	"maps"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/core/scripture"
	"github.com/samuel7776/monkeytype/internal/logging"
	"github.com/samuel7776/monkeytype/internal/validation"
)

// Fetcher resolves book names to documents, downloading each book at most once.
//
// Both outcomes are remembered: a book that failed to map, download or decode
// keeps returning the same error without touching the network again. A Fetcher
// is scoped to one run and is not safe for concurrent use.
type Fetcher struct {
	client *Client
	files  map[string]string
	cache  map[string]fetchResult

	downloads int
}

type fetchResult struct {
	doc *scripture.Document
	err error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBookFiles replaces the book name to filename table.
func WithBookFiles(files map[string]string) Option {
	return func(f *Fetcher) {
		f.files = maps.Clone(files)
	}
}

// NewFetcher creates a Fetcher that downloads through client.
func NewFetcher(client *Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client: client,
		files:  BookFiles(),
		cache:  make(map[string]fetchResult),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch returns the document for book.
//
// Errors are:
//   - *errors.NotFoundError when book has no filename mapping,
//   - *HTTPError or a transport error when the download fails or times out,
//   - *errors.ParseError when the body is not a valid book document.
func (f *Fetcher) Fetch(ctx context.Context, book string) (*scripture.Document, error) {
	if r, ok := f.cache[book]; ok {
		return r.doc, r.err
	}

	doc, err := f.fetch(ctx, book)
	if err != nil {
		logging.BookFailed(ctx, book, err)
	}
	f.cache[book] = fetchResult{doc: doc, err: err}
	return doc, err
}

func (f *Fetcher) fetch(ctx context.Context, book string) (*scripture.Document, error) {
	filename, ok := f.files[book]
	if !ok {
		return nil, qerrors.NewNotFound("book file mapping", book)
	}
	if err := validation.ValidateFilename(filename); err != nil {
		return nil, &qerrors.ValidationError{Field: "book file", Value: filename, Message: err.Error(), Err: err}
	}

	url := f.client.FileURL(filename)
	logging.BookDownload(ctx, book, url, "filename", filename)
	f.downloads++

	data, err := f.client.Download(ctx, url)
	if err != nil {
		return nil, qerrors.Wrapf(err, "download %s", filename)
	}

	doc, err := scripture.Decode(data)
	if err != nil {
		return nil, qerrors.NewParse("book JSON", url, err.Error(), err)
	}
	logging.DebugContext(ctx, "book_loaded",
		"book", book,
		"chapters", len(doc.Chapters),
		"verses", doc.VerseCount())
	return doc, nil
}

// Downloads returns the number of network requests issued so far.
func (f *Fetcher) Downloads() int {
	return f.downloads
}
