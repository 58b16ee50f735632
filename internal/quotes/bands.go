package quotes

// Band is a length bucket, inclusive on both ends.
type Band struct {
	Name string
	Min  int
	Max  int
}

// Contains reports whether length falls within the band.
func (b Band) Contains(length int) bool {
	return length >= b.Min && length <= b.Max
}

// DefaultBands are the length groups the front-end selects quotes by.
var DefaultBands = []Band{
	{Name: "short", Min: 0, Max: 100},
	{Name: "medium", Min: 101, Max: 300},
	{Name: "long", Min: 301, Max: 600},
	{Name: "thicc", Min: 601, Max: 9999},
}

// BandCount is the number of quotes in one band.
type BandCount struct {
	Band  Band
	Count int
}

// Classify counts quotes per band. A quote longer than the last band's Max is
// counted in the last band so the counts always sum to len(qs).
// Bands are assumed sorted and contiguous, as DefaultBands are.
func Classify(bands []Band, qs []Quote) []BandCount {
	counts := make([]BandCount, len(bands))
	for i, b := range bands {
		counts[i].Band = b
	}
	if len(bands) == 0 {
		return counts
	}

	for _, q := range qs {
		counts[bandIndex(bands, q.Length)].Count++
	}
	return counts
}

func bandIndex(bands []Band, length int) int {
	for i, b := range bands {
		if b.Contains(length) {
			return i
		}
	}
	if length < bands[0].Min {
		return 0
	}
	return len(bands) - 1
}

// BandFor returns the band a quote of the given length is counted in, using
// the same overflow rule as Classify. ok is false only when bands is empty.
func BandFor(bands []Band, length int) (b Band, ok bool) {
	if len(bands) == 0 {
		return Band{}, false
	}
	return bands[bandIndex(bands, length)], true
}
