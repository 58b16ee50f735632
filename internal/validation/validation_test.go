package validation

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizePath(t *testing.T) {
	baseDir := "/srv/site"

	tests := []struct {
		name      string
		userPath  string
		want      string
		wantError error
	}{
		{"dataset path", "frontend/static/quotes/english.json", filepath.Join("frontend", "static", "quotes", "english.json"), nil},
		{"redundant separators", "frontend//quotes.json", filepath.Join("frontend", "quotes.json"), nil},
		{"dot component", "./english.json", "english.json", nil},
		{"inner dotdot that stays inside", "frontend/../english.json", "english.json", nil},
		{"dotdot in a name", "a..b/english.json", filepath.Join("a..b", "english.json"), nil},
		{"escape with dotdot", "../etc/passwd", "", ErrPathTraversal},
		{"escape in middle", "frontend/../../etc/passwd", "", ErrPathTraversal},
		{"bare dotdot", "..", "", ErrPathTraversal},
		{"absolute path", "/etc/passwd", "", ErrPathTraversal},
		{"empty path", "", "", ErrEmptyPath},
		{"too long", strings.Repeat("a/", MaxPathLength), "", ErrPathTooLong},
		{"null byte", "english\x00.json", "", ErrInvalidCharacter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizePath(baseDir, tt.userPath)
			if tt.wantError != nil {
				if !errors.Is(err, tt.wantError) {
					t.Fatalf("SanitizePath(%q) error = %v, want %v", tt.userPath, err, tt.wantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("SanitizePath(%q) unexpected error: %v", tt.userPath, err)
			}
			if got != tt.want {
				t.Errorf("SanitizePath(%q) = %q, want %q", tt.userPath, got, tt.want)
			}
		})
	}
}

func TestValidateFilename(t *testing.T) {
	tests := []struct {
		filename  string
		wantError error
	}{
		{"Genesis.json", nil},
		{"SongofSolomon.json", nil},
		{"1Corinthians.json", nil},
		{"", ErrInvalidFilename},
		{".", ErrInvalidFilename},
		{"..", ErrInvalidFilename},
		{"../Genesis.json", ErrInvalidFilename},
		{"books\\Genesis.json", ErrInvalidFilename},
		{"Gen\nesis.json", ErrInvalidFilename},
		{strings.Repeat("a", MaxFilenameLength+1), ErrFilenameTooLong},
	}

	for _, tt := range tests {
		err := ValidateFilename(tt.filename)
		if tt.wantError == nil {
			if err != nil {
				t.Errorf("ValidateFilename(%q) unexpected error: %v", tt.filename, err)
			}
			continue
		}
		if !errors.Is(err, tt.wantError) {
			t.Errorf("ValidateFilename(%q) error = %v, want %v", tt.filename, err, tt.wantError)
		}
	}
}

func TestValidatePath(t *testing.T) {
	for _, ok := range []string{"/tmp/english.json", "english.json", "frontend/static/quotes/english.json"} {
		if err := ValidatePath(ok); err != nil {
			t.Errorf("ValidatePath(%q) unexpected error: %v", ok, err)
		}
	}
	bad := []struct {
		path string
		want error
	}{
		{"", ErrEmptyPath},
		{"a\x00b", ErrInvalidCharacter},
		{"a\tb", ErrInvalidCharacter},
		{strings.Repeat("x", MaxPathLength+1), ErrPathTooLong},
	}
	for _, tt := range bad {
		if err := ValidatePath(tt.path); !errors.Is(err, tt.want) {
			t.Errorf("ValidatePath(%q) error = %v, want %v", tt.path, err, tt.want)
		}
	}
}
