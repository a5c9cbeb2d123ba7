package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Errorf("Format(nil) = %q, want empty string", got)
	}

	err := errors.New("something broke")
	if got := Format(err); got != "Error: something broke" {
		t.Errorf("Format() = %q, want %q", got, "Error: something broke")
	}
}

func TestFormatf(t *testing.T) {
	got := Formatf("failed after %d attempts", 3)
	want := "Error: failed after 3 attempts"
	if got != want {
		t.Errorf("Formatf() = %q, want %q", got, want)
	}
}

func TestSentinelClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		notFound      bool
		notAuthorized bool
	}{
		{"plain not found", ErrNotFound, true, false},
		{"wrapped not found", fmt.Errorf("group %q: %w", "g1", ErrNotFound), true, false},
		{"plain not authorized", ErrNotAuthorized, false, true},
		{"wrapped not authorized", fmt.Errorf("reorder: %w", ErrNotAuthorized), false, true},
		{"unrelated", errors.New("boom"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFound(tt.err); got != tt.notFound {
				t.Errorf("IsNotFound() = %v, want %v", got, tt.notFound)
			}
			if got := IsNotAuthorized(tt.err); got != tt.notAuthorized {
				t.Errorf("IsNotAuthorized() = %v, want %v", got, tt.notAuthorized)
			}
		})
	}
}
