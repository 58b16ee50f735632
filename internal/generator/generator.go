// Package generator runs the quote dataset pipeline: deduplicate the catalog,
// parse references, fetch each needed book once, extract verse text, then
// number and classify the resulting quotes.
//
// Per-reference and per-book failures are logged and recorded as skips; they
// never stop the run. Writing the result is left to the caller.
package generator

import (
	"context"
	"slices"

	"github.com/samuel7776/monkeytype/core/catalog"
	"github.com/samuel7776/monkeytype/core/ref"
	"github.com/samuel7776/monkeytype/core/scripture"
	"github.com/samuel7776/monkeytype/internal/logging"
	"github.com/samuel7776/monkeytype/internal/quotes"
)

// Skip reasons, as reported in logs and Result.Skips.
const (
	ReasonBadFormat      = "bad_format"
	ReasonNoBookData     = "no_book_data"
	ReasonVersesNotFound = "verses_not_found"
)

// DocumentSource returns the document for a book. Implementations are expected
// to memoize, including failures.
type DocumentSource interface {
	Fetch(ctx context.Context, book string) (*scripture.Document, error)
}

// Options configures a run.
type Options struct {
	Categories []catalog.Category
	// Plan, when set, is used as is and Categories is ignored.
	Plan   *Plan
	Source DocumentSource
	// Language defaults to quotes.DefaultLanguage.
	Language string
	// Bands defaults to quotes.DefaultBands.
	Bands []quotes.Band
}

// Skip records a reference left out of the dataset.
type Skip struct {
	Ref    string
	Reason string
	Err    error
}

// Result is everything a run produced.
type Result struct {
	Plan       *Plan
	Loaded     int
	Skips      []Skip
	Document   quotes.Document
	BandCounts []quotes.BandCount
}

// Entry is one deduplicated reference and its parse outcome.
type Entry struct {
	Ref     string
	Locator ref.Locator
	Err     error
}

// Plan is the offline part of a run: everything known before any download.
type Plan struct {
	Refs    []string
	Counts  []catalog.Count
	Entries []Entry
	// Books are the distinct books of parsed references, sorted by name.
	Books []string
}

// NewPlan deduplicates categories and parses every reference.
func NewPlan(categories []catalog.Category) *Plan {
	refs, counts := catalog.Dedupe(categories)
	p := &Plan{
		Refs:    refs,
		Counts:  counts,
		Entries: make([]Entry, len(refs)),
	}

	seen := make(map[string]struct{})
	for i, r := range refs {
		loc, err := ref.Parse(r)
		p.Entries[i] = Entry{Ref: r, Locator: loc, Err: err}
		if err != nil {
			continue
		}
		if _, ok := seen[loc.Book]; !ok {
			seen[loc.Book] = struct{}{}
			p.Books = append(p.Books, loc.Book)
		}
	}
	slices.Sort(p.Books)
	return p
}

// Malformed returns the entries that failed to parse.
func (p *Plan) Malformed() []Entry {
	var out []Entry
	for _, e := range p.Entries {
		if e.Err != nil {
			out = append(out, e)
		}
	}
	return out
}

// Run executes the pipeline. It returns an error only when ctx is cancelled
// or no source is configured; individual failures become Skips.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Source == nil {
		return nil, errNoSource
	}
	language := opts.Language
	if language == "" {
		language = quotes.DefaultLanguage
	}
	bands := opts.Bands
	if len(bands) == 0 {
		bands = quotes.DefaultBands
	}

	plan := opts.Plan
	if plan == nil {
		plan = NewPlan(opts.Categories)
	}
	logger := logging.LoggerFromContext(ctx)
	logger.Info("plan ready",
		"unique_refs", len(plan.Refs),
		"books", len(plan.Books),
		"malformed", len(plan.Malformed()))

	res := &Result{Plan: plan}

	docs := make(map[string]*scripture.Document, len(plan.Books))
	for _, book := range plan.Books {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Failures are logged by the source.
		doc, err := opts.Source.Fetch(ctx, book)
		if err != nil || doc == nil {
			continue
		}
		docs[book] = doc
		res.Loaded++
	}

	var qs []quotes.Quote
	for _, e := range plan.Entries {
		if e.Err != nil {
			res.skip(ctx, e.Ref, ReasonBadFormat, e.Err)
			continue
		}
		doc, ok := docs[e.Locator.Book]
		if !ok {
			res.skip(ctx, e.Ref, ReasonNoBookData, nil)
			continue
		}
		text, err := doc.Extract(e.Locator)
		if err != nil {
			res.skip(ctx, e.Ref, ReasonVersesNotFound, err)
			continue
		}
		qs = append(qs, quotes.New(text, e.Locator.Citation()))
	}

	res.Document = quotes.Assemble(language, bands, qs)
	res.BandCounts = quotes.Classify(bands, res.Document.Quotes)

	logger.Info("extraction complete",
		"quotes", len(res.Document.Quotes),
		"skipped", len(res.Skips),
		"books_loaded", res.Loaded)
	return res, nil
}

func (r *Result) skip(ctx context.Context, reference, reason string, err error) {
	r.Skips = append(r.Skips, Skip{Ref: reference, Reason: reason, Err: err})
	logging.ReferenceSkipped(ctx, reference, reason, err)
}

// SkipsByReason counts skips per reason.
func (r *Result) SkipsByReason() map[string]int {
	out := make(map[string]int)
	for _, s := range r.Skips {
		out[s.Reason]++
	}
	return out
}
