package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
	"github.com/samuel7776/monkeytype/core/ref"
)

func TestDedupe(t *testing.T) {
	cats := []Category{
		{Name: "A", Refs: []string{"John 3:16", "Psalm 23:1", "John 3:16"}},
		{Name: "B", Refs: []string{"Psalm 23:1", "Genesis 1:1", "bogus"}},
		{Name: "C", Refs: nil},
	}

	refs, counts := Dedupe(cats)

	wantRefs := []string{"John 3:16", "Psalm 23:1", "Genesis 1:1", "bogus"}
	if diff := cmp.Diff(wantRefs, refs); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}

	wantCounts := []Count{
		{Category: "A", Listed: 3, UniqueTotal: 2},
		{Category: "B", Listed: 3, UniqueTotal: 4},
		{Category: "C", Listed: 0, UniqueTotal: 4},
	}
	if diff := cmp.Diff(wantCounts, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestDedupeKeepsFirstPosition(t *testing.T) {
	cats := []Category{
		{Name: "first", Refs: []string{"Romans 8:28", "Romans 12:1-2"}},
		{Name: "second", Refs: []string{"Romans 12:1-2", "Romans 8:28", "Romans 5:8"}},
	}
	refs, _ := Dedupe(cats)
	want := []string{"Romans 8:28", "Romans 12:1-2", "Romans 5:8"}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Errorf("refs mismatch (-want +got):\n%s", diff)
	}
}

func TestCountString(t *testing.T) {
	c := Count{Category: "Psalms", Listed: 143, UniqueTotal: 189}
	if got, want := c.String(), "Psalms: 143 refs (189 unique total)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDefault(t *testing.T) {
	cats := Default()

	var names []string
	for _, c := range cats {
		names = append(names, c.Name)
		if len(c.Refs) == 0 {
			t.Errorf("category %q is empty", c.Name)
		}
	}
	wantNames := []string{"Genesis", "Psalms", "Proverbs", "Words of Jesus", "Other Popular"}
	if diff := cmp.Diff(wantNames, names); diff != "" {
		t.Errorf("category order mismatch (-want +got):\n%s", diff)
	}

	// Every built-in reference must be parseable.
	refs, _ := Dedupe(cats)
	for _, r := range refs {
		if _, err := ref.Parse(r); err != nil {
			t.Errorf("built-in reference %q does not parse: %v", r, err)
		}
	}

	// The catalog lists some passages twice; dedupe must shrink it.
	total := 0
	for _, c := range cats {
		total += len(c.Refs)
	}
	if len(refs) >= total {
		t.Errorf("Dedupe() kept %d of %d refs, expected duplicates to collapse", len(refs), total)
	}
}

func TestDefaultReturnsCopies(t *testing.T) {
	first := Default()
	first[0].Refs[0] = "mutated"
	if Default()[0].Refs[0] == "mutated" {
		t.Error("Default() shares backing arrays between calls")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	content := `categories:
  - name: Comfort
    refs:
      - "Psalm 23:4"
      - "John 14:27"
  - name: Wisdom
    refs:
      - "Proverbs 3:5-6"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cats, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := []Category{
		{Name: "Comfort", Refs: []string{"Psalm 23:4", "John 14:27"}},
		{Name: "Wisdom", Refs: []string{"Proverbs 3:5-6"}},
	}
	if diff := cmp.Diff(want, cats); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	cats, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if diff := cmp.Diff(Default(), cats); diff != "" {
		t.Errorf("Load(\"\") differs from Default() (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.yaml"))
		var ioErr *qerrors.IOError
		if !errors.As(err, &ioErr) {
			t.Errorf("Load() error = %v, want IOError", err)
		}
	})

	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "categories: [unterminated"},
		{"unknown field", "categories:\n  - name: A\n    verses: [\"John 3:16\"]\n"},
		{"no categories", "categories: []\n"},
		{"unnamed category", "categories:\n  - refs: [\"John 3:16\"]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); !errors.Is(err, qerrors.ErrInvalidInput) {
				var pe *qerrors.ParseError
				if !errors.As(err, &pe) {
					t.Errorf("Load() error = %v, want parse or validation error", err)
				}
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	cats := Default()
	data, err := Encode(cats)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	decoded, err := Decode(data, "encoded")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if diff := cmp.Diff(cats, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
