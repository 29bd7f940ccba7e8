// internal/platform/errors/errors_test.go
package errors

import "testing"

func TestWrap(t *testing.T) {
	base := New("boom")
	wrapped := Wrap(base, "probing abc123")

	if wrapped.Error() != "probing abc123: boom" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !Is(wrapped, base) {
		t.Error("wrapped error does not match its cause")
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNotFound, "probing %q", "abc123")
	if !IsNotFound(wrapped) {
		t.Error("Wrapf lost the sentinel")
	}
	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"timeout", ErrTimeout, true},
		{"rate limit", ErrRateLimit, true},
		{"connection", ErrConnectionFailed, true},
		{"unavailable", ErrServiceUnavailable, true},
		{"not found", ErrNotFound, false},
		{"access denied", ErrAccessDenied, false},
		{"wrapped timeout", Wrap(ErrTimeout, "edit url"), true},
		{"generic", New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	if !IsTerminal(ErrNotFound) || !IsTerminal(Wrap(ErrAccessDenied, "pub url")) {
		t.Error("terminal sentinels not recognized")
	}
	if IsTerminal(ErrTimeout) || IsTerminal(nil) {
		t.Error("non-terminal errors classified as terminal")
	}
}

func TestIsConnectionFailed(t *testing.T) {
	if !IsConnectionFailed(ErrConnectionFailed) || !IsConnectionFailed(Wrap(ErrConnectionFailed, "dial tcp")) {
		t.Error("connection failures not recognized")
	}
	if IsConnectionFailed(ErrTimeout) || IsConnectionFailed(nil) {
		t.Error("unrelated errors classified as connection failures")
	}
}
