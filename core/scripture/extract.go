package scripture

import (
	"sort"
	"strconv"
	"strings"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/core/ref"
)

// Extract returns the text of the verses loc addresses: each verse trimmed,
// ordered by verse number and joined with a single space.
//
// Only the first chapter numbered loc.Chapter is searched. A missing chapter or
// a range that selects no verses yields a NotFoundError.
func (d *Document) Extract(loc ref.Locator) (string, error) {
	ch := d.Chapter(loc.Chapter)
	if ch == nil {
		return "", qerrors.NewNotFound("chapter", loc.Book+" "+strconv.Itoa(loc.Chapter))
	}

	var selected []Verse
	for _, v := range ch.Verses {
		if loc.Contains(int(v.Verse)) {
			selected = append(selected, v)
		}
	}
	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Verse < selected[j].Verse
	})

	texts := make([]string, 0, len(selected))
	for _, v := range selected {
		texts = append(texts, strings.TrimSpace(v.Text))
	}

	text := strings.Join(texts, " ")
	if text == "" {
		return "", qerrors.NewNotFound("verses", loc.Citation())
	}
	return text, nil
}
