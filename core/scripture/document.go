// Package scripture models a fetched source book and extracts verse text from it.
package scripture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Document is the full text of one book: chapters of numbered verses.
//
// The remote layout is
//
//	{"book": "Genesis", "chapters": [{"chapter": "1", "verses": [{"verse": "1", "text": "..."}]}]}
//
// where chapter and verse numbers may be JSON strings or numbers.
type Document struct {
	Book     string    `json:"book"`
	Chapters []Chapter `json:"chapters"`
}

// Chapter holds the verses of one chapter.
type Chapter struct {
	Chapter Number  `json:"chapter"`
	Verses  []Verse `json:"verses"`
}

// Verse is a single numbered verse.
type Verse struct {
	Verse Number `json:"verse"`
	Text  string `json:"text"`
}

// Number is an integer that decodes from either a JSON number or a numeric string.
type Number int

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(strings.TrimSpace(s))
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid number %s", data)
	}
	*n = Number(v)
	return nil
}

// MarshalJSON implements json.Marshaler. Numbers are written as JSON numbers.
func (n Number) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(n))), nil
}

// Decode parses a book document from JSON.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Chapter returns the first chapter numbered n, or nil.
func (d *Document) Chapter(n int) *Chapter {
	for i := range d.Chapters {
		if int(d.Chapters[i].Chapter) == n {
			return &d.Chapters[i]
		}
	}
	return nil
}

// VerseCount returns the total number of verses in the document.
func (d *Document) VerseCount() int {
	total := 0
	for _, ch := range d.Chapters {
		total += len(ch.Verses)
	}
	return total
}
