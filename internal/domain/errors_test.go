package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestEntryError_UnwrapsSentinel(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("clean letter: %w", &EntryError{Letter: "M", Line: 3, Raw: "malformed", Err: ErrMalformedEntry})

	if !errors.Is(err, ErrMalformedEntry) {
		t.Fatal("errors.Is(err, ErrMalformedEntry) = false")
	}

	var entryErr *EntryError
	if !errors.As(err, &entryErr) {
		t.Fatal("errors.As should find *EntryError")
	}
	if entryErr.Line != 3 || entryErr.Letter != "M" {
		t.Fatalf("unexpected location: %+v", entryErr)
	}
	if got := entryErr.Error(); got != `M.csv row 3 "malformed": malformed entry` {
		t.Fatalf("unexpected Error(): %q", got)
	}
}

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("cleaner.input_dir", "required")

	if got := err.Error(); got != "validation: cleaner.input_dir: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "log.level", Message: "unknown"},
		{Field: "tagger.tokenizer", Message: "unknown"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{ErrMalformedEntry, ErrMissingInput, ErrUnknownSense, ErrInvalidRecord, ErrValidation}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("%v should not match %v", a, b)
			}
		}
	}
}
