package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with ID",
			err:      &NotFoundError{Resource: "book file", ID: "Maccabees"},
			wantMsg:  "book file not found: Maccabees",
			wantBase: ErrNotFound,
		},
		{
			name:     "without ID",
			err:      &NotFoundError{Resource: "chapter"},
			wantMsg:  "chapter not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("index corrupt")
		err := &NotFoundError{Resource: "verses", ID: "Psalm 23:9", Err: underlyingErr}
		if got := err.Error(); got != "verses not found: Psalm 23:9" {
			t.Errorf("Error() = %q", got)
		}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name    string
		err     *ValidationError
		wantMsg string
	}{
		{
			name:    "with field",
			err:     NewValidation("end verse", "3", "must not be before start verse 5"),
			wantMsg: "validation failed for end verse: must not be before start verse 5",
		},
		{
			name:    "without field",
			err:     &ValidationError{Message: "empty reference"},
			wantMsg: "validation failed: empty reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if !errors.Is(tt.err, ErrInvalidInput) {
				t.Errorf("errors.Is(%v, ErrInvalidInput) = false", tt.err)
			}
		})
	}
}

func TestIOError(t *testing.T) {
	base := fmt.Errorf("read-only file system")

	withPath := NewIO("write", "frontend/static/quotes/english.json", base)
	if got, want := withPath.Error(), "failed to write frontend/static/quotes/english.json: read-only file system"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(withPath, base) {
		t.Error("IOError should unwrap to the underlying error")
	}

	noPath := NewIO("lock", "", base)
	if got, want := noPath.Error(), "failed to lock: read-only file system"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestParseError(t *testing.T) {
	err := NewParse("book JSON", "https://example.test/Genesis.json", "unexpected end of input", nil)
	if got, want := err.Error(), "failed to parse book JSON at https://example.test/Genesis.json: unexpected end of input"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseError without cause should unwrap to ErrInvalidInput")
	}

	cause := fmt.Errorf("bad token")
	wrapped := NewParse("reference", "", "bad token", cause)
	if got, want := wrapped.Error(), "failed to parse reference: bad token"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("ParseError should unwrap to its cause")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if Wrapf(nil, "context %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}

	base := NewNotFound("chapter", "151")
	err := Wrapf(base, "extract %s", "Psalm 151:1")
	if got, want := err.Error(), "extract Psalm 151:1: chapter not found: 151"; got != want {
		t.Errorf("Wrapf() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is(err, ErrNotFound) = false")
	}

	var nf *NotFoundError
	if !errors.As(Wrap(base, "outer"), &nf) {
		t.Fatal("errors.As() should find NotFoundError through Wrap")
	}
	if nf.ID != "151" {
		t.Errorf("NotFoundError.ID = %q, want 151", nf.ID)
	}
}
