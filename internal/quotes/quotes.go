// Package quotes builds the quote dataset consumed by the typing front-end.
//
// The dataset layout is a compatibility contract with the front-end:
//
//	{
//	  "language": "english",
//	  "groups": [[0,100],[101,300],[301,600],[601,9999]],
//	  "quotes": [{"text": "...", "source": "Book C:V", "length": N, "id": K}]
//	}
//
// groups are only boundaries; every quote is listed regardless of its length.
package quotes

import (
	"bytes"
	"encoding/json"
	"io"
	"unicode/utf8"
)

// DefaultLanguage is the language tag written to the dataset.
const DefaultLanguage = "english"

// Quote is one entry of the dataset.
type Quote struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Length int    `json:"length"`
	ID     int    `json:"id"`
}

// New creates a quote whose Length is the character count of text.
// The ID is assigned later by Assemble.
func New(text, source string) Quote {
	return Quote{
		Text:   text,
		Source: source,
		Length: utf8.RuneCountInString(text),
	}
}

// Document is the serialized dataset.
type Document struct {
	Language string   `json:"language"`
	Groups   [][2]int `json:"groups"`
	Quotes   []Quote  `json:"quotes"`
}

// Assemble numbers quotes 1..N in the given order and wraps them in a Document.
// The input slice is not modified.
func Assemble(language string, bands []Band, qs []Quote) Document {
	numbered := make([]Quote, len(qs))
	for i, q := range qs {
		q.ID = i + 1
		numbered[i] = q
	}

	groups := make([][2]int, len(bands))
	for i, b := range bands {
		groups[i] = [2]int{b.Min, b.Max}
	}

	return Document{
		Language: language,
		Groups:   groups,
		Quotes:   numbered,
	}
}

// Encode writes the document as two-space indented JSON. Keys follow struct
// order and text is written without HTML escaping.
func (d Document) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Bytes returns the encoded document.
func (d Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
