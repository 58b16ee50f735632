// Package ref parses human-readable verse references such as "John 3:16",
// "1 Samuel 16:7" or "Psalm 23:1-6" into locators, and formats locators back
// into citations.
package ref

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
)

// Locator is the structured form of a verse reference.
type Locator struct {
	// Book is the book name as written in the reference (e.g., "Psalm", "1 Corinthians").
	Book string `json:"book"`

	// Chapter is the chapter number (1-indexed).
	Chapter int `json:"chapter"`

	// StartVerse is the first verse of the range (1-indexed).
	StartVerse int `json:"start_verse"`

	// EndVerse is the last verse of the range. Equal to StartVerse for single verses.
	EndVerse int `json:"end_verse"`
}

// refGrammar is the participle grammar for "<book> <chapter>:<verse>[-<end>]".
type refGrammar struct {
	Book       string `parser:"@Book Whitespace"`
	Chapter    int    `parser:"@Int \":\""`
	StartVerse int    `parser:"@Int"`
	EndVerse   *int   `parser:"( \"-\" @Int )?"`
}

// refLexer tokenizes references. A whole book name, including an optional
// leading number ("1 John", "2Samuel") and inner spaces ("Song of Solomon"),
// is a single Book token so the space before the chapter stays significant.
// Words after the number may not start with a digit, ':' or '-'; anything else
// goes ("St. John", "Ésaïe", "Song-of-Songs").
var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Book", Pattern: `[0-9]*\s*[^\s\d:\-][^\s:]*(?:\s+[^\s\d:\-][^\s:]*)*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[:\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
)

// Parse parses a reference string into a Locator.
// Supported formats:
//   - "Genesis 1:1" (single verse)
//   - "Genesis 1:26-28" (verse range)
//   - "1 Corinthians 13:4-7" (numbered book)
//   - "Song of Solomon 2:4" (multi-word book)
//
// Chapter and verse numbers must be positive and a range must not run backwards.
func Parse(s string) (Locator, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Locator{}, qerrors.NewValidation("reference", s, "empty reference string")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return Locator{}, qerrors.NewParse("reference", s, err.Error(), err)
	}

	loc := Locator{
		Book:       normalizeBook(parsed.Book),
		Chapter:    parsed.Chapter,
		StartVerse: parsed.StartVerse,
		EndVerse:   parsed.StartVerse,
	}
	if parsed.EndVerse != nil {
		loc.EndVerse = *parsed.EndVerse
	}

	if err := loc.Validate(); err != nil {
		return Locator{}, err
	}
	return loc, nil
}

// MustParse is like Parse but panics on error. Intended for tests and static data.
func MustParse(s string) Locator {
	loc, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate checks that the locator addresses a non-empty, forward range.
func (l Locator) Validate() error {
	switch {
	case l.Book == "":
		return qerrors.NewValidation("book", "", "must not be empty")
	case l.Chapter < 1:
		return qerrors.NewValidation("chapter", strconv.Itoa(l.Chapter), "must be positive")
	case l.StartVerse < 1:
		return qerrors.NewValidation("start verse", strconv.Itoa(l.StartVerse), "must be positive")
	case l.EndVerse < l.StartVerse:
		return qerrors.NewValidation("end verse", strconv.Itoa(l.EndVerse),
			"must not be before start verse "+strconv.Itoa(l.StartVerse))
	}
	return nil
}

// IsRange returns true if the locator spans more than one verse.
func (l Locator) IsRange() bool {
	return l.EndVerse > l.StartVerse
}

// Contains returns true if verse lies within the locator's verse range.
func (l Locator) Contains(verse int) bool {
	return verse >= l.StartVerse && verse <= l.EndVerse
}

// Citation formats the locator as "Book C:V" or "Book C:V-E".
func (l Locator) Citation() string {
	var sb strings.Builder
	sb.WriteString(l.Book)
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(l.Chapter))
	sb.WriteString(":")
	sb.WriteString(strconv.Itoa(l.StartVerse))
	if l.IsRange() {
		sb.WriteString("-")
		sb.WriteString(strconv.Itoa(l.EndVerse))
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (l Locator) String() string {
	return l.Citation()
}

// normalizeBook collapses runs of whitespace inside a book name to one space.
func normalizeBook(book string) string {
	return strings.Join(strings.Fields(book), " ")
}
