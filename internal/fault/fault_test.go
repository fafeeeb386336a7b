package fault

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "with path and cause",
			err:  New("record.load", KindIO, "/tmp/in.json", os.ErrNotExist),
			want: "record.load: io error (path=/tmp/in.json): file does not exist",
		},
		{
			name: "without path",
			err:  New("export.encode", KindEncoding, "", errors.New("boom")),
			want: "export.encode: encoding error: boom",
		},
		{
			name: "bare",
			err:  &Error{Op: "config.check", Kind: KindConfig},
			want: "config.check: config error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_NilReceiver(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Errorf("nil Error() = %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Error("nil Unwrap() should be nil")
	}
}

func TestIsKind(t *testing.T) {
	base := New("record.load", KindParse, "in.json", errors.New("bad json"))
	wrapped := fmt.Errorf("loading records: %w", base)

	if !IsKind(wrapped, KindParse) {
		t.Error("IsKind should see through fmt.Errorf wrapping")
	}
	if IsKind(wrapped, KindIO) {
		t.Error("IsKind matched the wrong kind")
	}
	if IsKind(errors.New("plain"), KindParse) {
		t.Error("IsKind matched a non-fault error")
	}
	if KindOf(wrapped) != KindParse {
		t.Errorf("KindOf() = %q, want %q", KindOf(wrapped), KindParse)
	}
	if KindOf(nil) != "" {
		t.Error("KindOf(nil) should be empty")
	}
}

func TestError_Unwrap(t *testing.T) {
	err := New("export.write", KindIO, "out/a.xml", os.ErrPermission)
	if !errors.Is(err, os.ErrPermission) {
		t.Error("errors.Is should find the cause")
	}
}
