package sdfatlas

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/sdfatlas/text"
	"github.com/gogpu/sdfatlas/text/sdf"
)

func TestFontResolutionError(t *testing.T) {
	err := error(&FontResolutionError{
		Font: FontSpec{Family: "Nope", Size: 12},
		Err:  text.ErrFontNotFound,
	})

	if !errors.Is(err, ErrFontResolution) {
		t.Error("errors.Is(err, ErrFontResolution) = false")
	}
	if !errors.Is(err, text.ErrFontNotFound) {
		t.Error("errors.Is(err, text.ErrFontNotFound) = false")
	}
	if errors.Is(err, ErrEmptyInput) {
		t.Error("errors.Is(err, ErrEmptyInput) = true")
	}
	if msg := err.Error(); !strings.Contains(msg, "Nope") {
		t.Errorf("Error() = %q, want the family name", msg)
	}
}

func TestStageErrorsAreShared(t *testing.T) {
	if ErrInvalidDimensions != sdf.ErrInvalidDimensions {
		t.Error("ErrInvalidDimensions differs from sdf.ErrInvalidDimensions")
	}
	if ErrInvalidParameter != sdf.ErrInvalidParameter {
		t.Error("ErrInvalidParameter differs from sdf.ErrInvalidParameter")
	}
}
