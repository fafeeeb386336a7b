package output

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gorewood/xmlifyme/internal/fault"
)

func TestExitCodeConstants(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"ExitSuccess", ExitSuccess, 0},
		{"ExitUserError", ExitUserError, 1},
		{"ExitSystemError", ExitSystemError, 2},
		{"ExitPartial", ExitPartial, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.code != tt.expected {
				t.Errorf("%s = %d, want %d", tt.name, tt.code, tt.expected)
			}
		})
	}
}

func TestExitError(t *testing.T) {
	cause := errors.New("2 records failed")
	tests := []struct {
		name     string
		err      *ExitError
		wantCode int
		wantMsg  string
	}{
		{name: "user error", err: NewUserError(`unknown argument "xlm"`), wantCode: ExitUserError, wantMsg: `unknown argument "xlm"`},
		{name: "system error", err: NewSystemError("disk full"), wantCode: ExitSystemError, wantMsg: "disk full"},
		{name: "partial error", err: NewPartialError("2 of 5 records failed", cause), wantCode: ExitPartial, wantMsg: "2 of 5 records failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}

	if !errors.Is(NewPartialError("x", cause), cause) {
		t.Error("errors.Is should find the partial error cause")
	}
}

func TestFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "config", err: fault.New("config.check_input", fault.KindConfig, "data", errors.New("missing")), wantCode: ExitUserError},
		{name: "parse", err: fault.New("record.load", fault.KindParse, "in.json", errors.New("bad")), wantCode: ExitUserError},
		{name: "io", err: fault.New("export.mkdir", fault.KindIO, "out", errors.New("denied")), wantCode: ExitSystemError},
		{name: "encoding", err: fault.New("export.encode", fault.KindEncoding, "", errors.New("bad")), wantCode: ExitSystemError},
		{name: "wrapped io", err: fmt.Errorf("exporting: %w", fault.New("export.write", fault.KindIO, "", errors.New("x"))), wantCode: ExitSystemError},
		{name: "untyped", err: errors.New("something"), wantCode: ExitUserError},
		{name: "already exit error", err: NewPartialError("p", nil), wantCode: ExitPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromError(tt.err)
			if got.Code != tt.wantCode {
				t.Errorf("FromError().Code = %d, want %d", got.Code, tt.wantCode)
			}
			if got.Message != tt.err.Error() {
				t.Errorf("FromError().Message = %q, want %q", got.Message, tt.err.Error())
			}
			if GetExitCode(tt.err) != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", GetExitCode(tt.err), tt.wantCode)
			}
		})
	}

	if FromError(nil) != nil {
		t.Error("FromError(nil) should be nil")
	}
	if GetExitCode(nil) != ExitSuccess {
		t.Error("GetExitCode(nil) should be ExitSuccess")
	}
}
