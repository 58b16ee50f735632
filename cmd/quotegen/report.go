package main

import (
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/samuel7776/monkeytype/internal/fetch"
	"github.com/samuel7776/monkeytype/internal/generator"
	"github.com/samuel7776/monkeytype/internal/output"
)

func printPlan(w io.Writer, plan *generator.Plan) {
	rows := make([][]string, 0, len(plan.Counts))
	for _, c := range plan.Counts {
		rows = append(rows, []string{c.Category, strconv.Itoa(c.Listed), strconv.Itoa(c.UniqueTotal)})
	}
	fmt.Fprintln(w, renderTable(
		[]column{left("Category"), right("Refs"), right("Unique total")},
		rows,
	))
	fmt.Fprintf(w, "\nTotal unique references: %d\n", len(plan.Refs))
	fmt.Fprintf(w, "Books to download: %d\n", len(plan.Books))
}

func printExtraction(w io.Writer, res *generator.Result, downloads int) {
	fmt.Fprintf(w, "\nDownloaded %d books (%d requests). Extracted %d quotes:\n",
		res.Loaded, downloads, len(res.Document.Quotes))

	rows := make([][]string, 0, len(res.BandCounts))
	for _, bc := range res.BandCounts {
		rows = append(rows, []string{
			bc.Band.Name,
			fmt.Sprintf("%d-%d", bc.Band.Min, bc.Band.Max),
			strconv.Itoa(bc.Count),
		})
	}
	fmt.Fprintln(w, renderTable(
		[]column{left("Band"), right("Chars"), right("Quotes")},
		rows,
	))

	if len(res.Skips) == 0 {
		return
	}
	byReason := res.SkipsByReason()
	fmt.Fprintf(w, "Skipped %d references (bad format: %d, no book data: %d, verses not found: %d)\n",
		len(res.Skips),
		byReason[generator.ReasonBadFormat],
		byReason[generator.ReasonNoBookData],
		byReason[generator.ReasonVersesNotFound])
}

func printWritten(w io.Writer, count int, res *output.Result) {
	fmt.Fprintf(w, "\nWrote %d quotes to %s (%s)\n", count, res.Path, humanize.Bytes(uint64(res.Bytes)))
	fmt.Fprintf(w, "blake3: %s\n", res.BLAKE3)
	if res.XZPath != "" {
		fmt.Fprintf(w, "xz:     %s (%s)\n", res.XZPath, humanize.Bytes(uint64(res.XZBytes)))
	}
	if res.SQLitePath != "" {
		fmt.Fprintf(w, "sqlite: %s\n", res.SQLitePath)
	}
}

func printEntries(w io.Writer, plan *generator.Plan, malformedOnly bool) {
	var rows [][]string
	for i, e := range plan.Entries {
		if malformedOnly && e.Err == nil {
			continue
		}
		row := []string{strconv.Itoa(i + 1), e.Ref}
		if e.Err != nil {
			row = append(row, "", "", "", e.Err.Error())
		} else {
			row = append(row,
				e.Locator.Book,
				strconv.Itoa(e.Locator.Chapter),
				verseSpan(e.Locator.StartVerse, e.Locator.EndVerse),
				"")
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No malformed references.")
		return
	}
	fmt.Fprintln(w, renderTable(
		[]column{right("#"), left("Reference"), left("Book"), right("Chapter"), right("Verses"), left("Error")},
		rows,
	))
}

func verseSpan(start, end int) string {
	if start == end {
		return strconv.Itoa(start)
	}
	return fmt.Sprintf("%d-%d", start, end)
}

func printBooks(w io.Writer, plan *generator.Plan, client *fetch.Client, all bool) {
	refs := make(map[string]int)
	for _, e := range plan.Entries {
		if e.Err == nil {
			refs[e.Locator.Book]++
		}
	}

	books := plan.Books
	if all {
		books = slices.Clone(plan.Books)
		for _, book := range fetch.KnownBooks() {
			if _, ok := refs[book]; !ok {
				books = append(books, book)
			}
		}
		slices.Sort(books)
	}

	rows := make([][]string, 0, len(books))
	unmapped := 0
	for _, book := range books {
		file, ok := fetch.BookFile(book)
		url := ""
		if ok {
			url = client.FileURL(file)
		} else {
			file = "(unmapped)"
			unmapped++
		}
		rows = append(rows, []string{book, file, strconv.Itoa(refs[book]), url})
	}
	fmt.Fprintln(w, renderTable(
		[]column{left("Book"), left("File"), right("Refs"), left("URL")},
		rows,
	))
	fmt.Fprintf(w, "\n%d books from %s", len(plan.Books), client.BaseURL())
	if unmapped > 0 {
		fmt.Fprintf(w, ", %d unmapped", unmapped)
	}
	if all {
		fmt.Fprintf(w, ", %d mapped in total", len(fetch.KnownBooks()))
	}
	fmt.Fprintln(w)
}
