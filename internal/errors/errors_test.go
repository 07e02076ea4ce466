package errors_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	docerrors "github.com/chazuruo/actiondoc/internal/errors"
)

// TestBaseErrors verifies that all base error types have correct messages.
func TestBaseErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"ErrNotFound", docerrors.ErrNotFound, "not found"},
		{"ErrInvalid", docerrors.ErrInvalid, "invalid"},
		{"ErrIO", docerrors.ErrIO, "I/O error"},
		{"ErrMarkerMissing", docerrors.ErrMarkerMissing, "marker missing"},
		{"ErrStale", docerrors.ErrStale, "document is out of date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError verifies ParseError formatting and unwrapping.
func TestParseError(t *testing.T) {
	tests := []struct {
		name string
		err  *docerrors.ParseError
		want string
	}{
		{
			name: "yaml error",
			err:  &docerrors.ParseError{Path: ".github/workflows/ci.yml", Err: fmt.Errorf("yaml: line 3: mapping values are not allowed")},
			want: "parse .github/workflows/ci.yml: yaml: line 3: mapping values are not allowed",
		},
		{
			name: "os error",
			err:  &docerrors.ParseError{Path: "broken.yml", Err: os.ErrPermission},
			want: "parse broken.yml: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Unwrap returns original error", func(t *testing.T) {
		wrapped := &docerrors.ParseError{Path: "x.yml", Err: os.ErrPermission}
		if !errors.Is(wrapped, os.ErrPermission) {
			t.Error("Unwrap() did not return the original error for errors.Is")
		}
	})
}

// TestMarkerError verifies MarkerError formatting and unwrapping.
func TestMarkerError(t *testing.T) {
	err := &docerrors.MarkerError{
		Region: "workflows",
		Marker: "<!-- WORKFLOWS_START -->",
		Err:    docerrors.ErrMarkerMissing,
	}

	want := "workflows region: marker missing: <!-- WORKFLOWS_START -->"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !docerrors.IsMarkerMissing(err) {
		t.Error("IsMarkerMissing(MarkerError) = false, want true")
	}
}

// TestConfigError verifies ConfigError formatting and unwrapping.
func TestConfigError(t *testing.T) {
	tests := []struct {
		name string
		err  *docerrors.ConfigError
		want string
	}{
		{
			name: "with path",
			err:  &docerrors.ConfigError{Path: ".actiondoc.toml", Err: docerrors.ErrInvalid},
			want: "config .actiondoc.toml: invalid",
		},
		{
			name: "without path",
			err:  &docerrors.ConfigError{Err: docerrors.ErrNotFound},
			want: "config: not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("Unwrap returns original error", func(t *testing.T) {
		wrapped := &docerrors.ConfigError{Err: docerrors.ErrInvalid}
		if !errors.Is(wrapped, docerrors.ErrInvalid) {
			t.Error("Unwrap() did not return the original error for errors.Is")
		}
	})
}

// TestWrap verifies the Wrap helper function.
func TestWrap(t *testing.T) {
	original := docerrors.ErrNotFound
	wrapped := docerrors.Wrap(original, "readFile")

	if got := wrapped.Error(); got != "readFile: not found" {
		t.Errorf("Error() = %q, want 'readFile: not found'", got)
	}

	t.Run("Double wrap preserves original", func(t *testing.T) {
		doubleWrapped := docerrors.Wrap(wrapped, "loadConfig")
		if !errors.Is(doubleWrapped, original) {
			t.Error("Double wrap did not preserve the original error")
		}
	})

	t.Run("nil stays nil", func(t *testing.T) {
		if docerrors.Wrap(nil, "noop") != nil {
			t.Error("Wrap(nil) should return nil")
		}
	})
}

// TestIsHelpers verifies all Is<TYPE>() helper functions.
func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name    string
		baseErr error
		isFunc  func(error) bool
	}{
		{"IsNotFound", docerrors.ErrNotFound, docerrors.IsNotFound},
		{"IsInvalid", docerrors.ErrInvalid, docerrors.IsInvalid},
		{"IsIO", docerrors.ErrIO, docerrors.IsIO},
		{"IsMarkerMissing", docerrors.ErrMarkerMissing, docerrors.IsMarkerMissing},
		{"IsStale", docerrors.ErrStale, docerrors.IsStale},
	}

	for _, tt := range tests {
		t.Run(tt.name+" direct", func(t *testing.T) {
			if !tt.isFunc(tt.baseErr) {
				t.Errorf("%s(%v) = false, want true", tt.name, tt.baseErr)
			}
		})
		t.Run(tt.name+" wrapped", func(t *testing.T) {
			if !tt.isFunc(docerrors.Wrap(tt.baseErr, "outer")) {
				t.Errorf("%s(wrapped) = false, want true", tt.name)
			}
		})
	}

	t.Run("IsNotFound with different error", func(t *testing.T) {
		if docerrors.IsNotFound(docerrors.ErrInvalid) {
			t.Error("IsNotFound(ErrInvalid) = true, want false")
		}
	})
}

// TestAsHelpers verifies all As<TYPE>Error() helper functions.
func TestAsHelpers(t *testing.T) {
	t.Run("AsParseError with wrapped", func(t *testing.T) {
		wrapped := docerrors.Wrap(&docerrors.ParseError{Path: "ci.yml", Err: docerrors.ErrInvalid}, "collect")
		result, ok := docerrors.AsParseError(wrapped)
		if !ok {
			t.Fatal("AsParseError(wrapped) = false, want true")
		}
		if result.Path != "ci.yml" {
			t.Errorf("AsParseError returned wrong Path: got %q", result.Path)
		}
	})

	t.Run("AsMarkerError", func(t *testing.T) {
		me := &docerrors.MarkerError{Region: "tree", Marker: "<!-- X -->", Err: docerrors.ErrMarkerMissing}
		result, ok := docerrors.AsMarkerError(me)
		if !ok {
			t.Fatal("AsMarkerError(valid) = false, want true")
		}
		if result.Region != "tree" {
			t.Errorf("AsMarkerError returned wrong Region: got %q", result.Region)
		}
	})

	t.Run("AsConfigError", func(t *testing.T) {
		ce := &docerrors.ConfigError{Path: "/path/to/config", Err: docerrors.ErrInvalid}
		result, ok := docerrors.AsConfigError(ce)
		if !ok {
			t.Fatal("AsConfigError(valid) = false, want true")
		}
		if result.Path != "/path/to/config" {
			t.Errorf("AsConfigError returned wrong Path: got %q, want '/path/to/config'", result.Path)
		}
	})

	t.Run("wrong types", func(t *testing.T) {
		if _, ok := docerrors.AsParseError(docerrors.ErrNotFound); ok {
			t.Error("AsParseError(ErrNotFound) = true, want false")
		}
		if _, ok := docerrors.AsMarkerError(docerrors.ErrMarkerMissing); ok {
			t.Error("AsMarkerError(ErrMarkerMissing) = true, want false")
		}
		if _, ok := docerrors.AsConfigError(docerrors.ErrInvalid); ok {
			t.Error("AsConfigError(ErrInvalid) = true, want false")
		}
	})
}
