// Package catalog holds the curated verse references the generator processes.
//
// A catalog is an ordered list of named categories, each an ordered list of
// reference strings. Dedupe flattens it into the processing order: categories
// in listed order, references in listed order, first occurrence wins.
package catalog

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	qerrors "github.com/samuel7776/monkeytype/core/errors"
)

// Category is a named, ordered group of reference strings.
type Category struct {
	Name string   `yaml:"name"`
	Refs []string `yaml:"refs"`
}

// Count is the per-category diagnostic recorded during Dedupe.
type Count struct {
	// Category is the category name.
	Category string
	// Listed is the number of references listed in the category, duplicates included.
	Listed int
	// UniqueTotal is the running number of unique references after this category.
	UniqueTotal int
}

// String formats the count as the progress line printed by the generator.
func (c Count) String() string {
	return fmt.Sprintf("%s: %d refs (%d unique total)", c.Category, c.Listed, c.UniqueTotal)
}

// Dedupe returns the unique references of categories in processing order along
// with per-category counts. Strings are compared exactly; malformed references
// pass through untouched.
func Dedupe(categories []Category) ([]string, []Count) {
	seen := make(map[string]struct{})
	var refs []string
	counts := make([]Count, 0, len(categories))

	for _, cat := range categories {
		for _, r := range cat.Refs {
			if _, ok := seen[r]; ok {
				continue
			}
			seen[r] = struct{}{}
			refs = append(refs, r)
		}
		counts = append(counts, Count{
			Category:    cat.Name,
			Listed:      len(cat.Refs),
			UniqueTotal: len(refs),
		})
	}

	return refs, counts
}

// file is the on-disk YAML layout of a catalog.
type file struct {
	Categories []Category `yaml:"categories"`
}

// Load reads a catalog from a YAML file. An empty path returns Default().
//
// Layout:
//
//	categories:
//	  - name: Psalms
//	    refs:
//	      - "Psalm 23:1"
//	      - "Psalm 23:1-6"
func Load(path string) ([]Category, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, qerrors.NewIO("read", path, err)
	}
	return Decode(data, path)
}

// Decode parses YAML catalog bytes. source names the input in errors.
func Decode(data []byte, source string) ([]Category, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, qerrors.NewParse("catalog", source, err.Error(), err)
	}

	if len(f.Categories) == 0 {
		return nil, qerrors.NewValidation("categories", source, "catalog has no categories")
	}
	for i, cat := range f.Categories {
		if cat.Name == "" {
			return nil, qerrors.NewValidation("name", fmt.Sprintf("categories[%d]", i), "category name must not be empty")
		}
	}
	return f.Categories, nil
}

// Encode renders categories in the YAML layout accepted by Load.
func Encode(categories []Category) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(file{Categories: categories}); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
