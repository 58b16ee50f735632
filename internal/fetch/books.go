package fetch

import (
	"maps"
	"sort"
)

// bookFiles maps the book names used in references to remote filenames.
// Names follow the catalog's spelling ("Psalm", not "Psalms").
var bookFiles = map[string]string{
	"Genesis":         "Genesis.json",
	"Exodus":          "Exodus.json",
	"Leviticus":       "Leviticus.json",
	"Numbers":         "Numbers.json",
	"Deuteronomy":     "Deuteronomy.json",
	"Joshua":          "Joshua.json",
	"Ruth":            "Ruth.json",
	"1 Samuel":        "1Samuel.json",
	"2 Samuel":        "2Samuel.json",
	"1 Chronicles":    "1Chronicles.json",
	"2 Chronicles":    "2Chronicles.json",
	"Nehemiah":        "Nehemiah.json",
	"Job":             "Job.json",
	"Psalm":           "Psalms.json",
	"Proverbs":        "Proverbs.json",
	"Ecclesiastes":    "Ecclesiastes.json",
	"Song of Solomon": "SongofSolomon.json",
	"Isaiah":          "Isaiah.json",
	"Jeremiah":        "Jeremiah.json",
	"Lamentations":    "Lamentations.json",
	"Ezekiel":         "Ezekiel.json",
	"Daniel":          "Daniel.json",
	"Hosea":           "Hosea.json",
	"Joel":            "Joel.json",
	"Amos":            "Amos.json",
	"Micah":           "Micah.json",
	"Nahum":           "Nahum.json",
	"Habakkuk":        "Habakkuk.json",
	"Zephaniah":       "Zephaniah.json",
	"Zechariah":       "Zechariah.json",
	"Malachi":         "Malachi.json",
	"Matthew":         "Matthew.json",
	"Mark":            "Mark.json",
	"Luke":            "Luke.json",
	"John":            "John.json",
	"Acts":            "Acts.json",
	"Romans":          "Romans.json",
	"1 Corinthians":   "1Corinthians.json",
	"2 Corinthians":   "2Corinthians.json",
	"Galatians":       "Galatians.json",
	"Ephesians":       "Ephesians.json",
	"Philippians":     "Philippians.json",
	"Colossians":      "Colossians.json",
	"1 Thessalonians": "1Thessalonians.json",
	"2 Thessalonians": "2Thessalonians.json",
	"1 Timothy":       "1Timothy.json",
	"2 Timothy":       "2Timothy.json",
	"Titus":           "Titus.json",
	"Hebrews":         "Hebrews.json",
	"James":           "James.json",
	"1 Peter":         "1Peter.json",
	"2 Peter":         "2Peter.json",
	"1 John":          "1John.json",
	"Jude":            "Jude.json",
	"Revelation":      "Revelation.json",
}

// BookFile returns the remote filename for a book name.
func BookFile(book string) (string, bool) {
	f, ok := bookFiles[book]
	return f, ok
}

// BookFiles returns a copy of the book name to filename table.
func BookFiles() map[string]string {
	return maps.Clone(bookFiles)
}

// KnownBooks returns the mapped book names in sorted order.
func KnownBooks() []string {
	names := make([]string, 0, len(bookFiles))
	for name := range bookFiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
