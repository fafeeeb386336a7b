package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/xmlifyme/internal/output"
)

// isolateEnv keeps the user's config file and XMLIFYME_* variables out of
// a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XMLIFYME_CONFIG_HOME", t.TempDir())
	for _, key := range []string{"XMLIFYME_INPUT", "XMLIFYME_OUTPUT", "XMLIFYME_EXTENSION", "XMLIFYME_STRIP_BACKSLASHES"} {
		t.Setenv(key, "")
	}
}

// setupJob creates a base directory whose data/input.json holds input.
func setupJob(t *testing.T, input string) string {
	t.Helper()
	base := t.TempDir()
	if err := os.MkdirAll(filepath.Join(base, "data"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(base, "data", "input.json"), []byte(input), 0o600); err != nil {
		t.Fatal(err)
	}
	return base
}

// executeRoot runs the root command with args, bypassing fang.
func executeRoot(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	cmd.SetOut(outBuf)
	cmd.SetErr(errBuf)
	cmd.SetArgs(normalizeArgs(cmd, args))
	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestRootCommand_Version(t *testing.T) {
	version = "1.2.3"
	defer func() { version = "dev" }()

	stdout, _, err := executeRoot(t, "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stdout, "1.2.3") {
		t.Errorf("--version output should contain version: %q", stdout)
	}
	if !strings.Contains(stdout, "xmlifyme") {
		t.Errorf("--version output should contain 'xmlifyme': %q", stdout)
	}
}

func TestBuildVersion(t *testing.T) {
	defer func() { version, commit, date = "dev", "none", "unknown" }()

	if got := buildVersion(); got != "dev" {
		t.Errorf("buildVersion() = %q, want %q", got, "dev")
	}

	version, commit, date = "1.0.0", "abcdef1234567", "2024-01-01"
	if got, want := buildVersion(), "1.0.0 (abcdef1, 2024-01-01)"; got != want {
		t.Errorf("buildVersion() = %q, want %q", got, want)
	}
}

func TestRootCommand_HelpWithoutTouchingFilesystem(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"help", []string{"help"}},
		{"h", []string{"h"}},
		{"dashed help", []string{"-HELP"}},
		{"help flag", []string{"--help"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := filepath.Join(t.TempDir(), "job")
			args := append([]string{"--dir", base}, tt.args...)

			stdout, _, err := executeRoot(t, args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			for _, want := range []string{"Usage:", "xmlifyme", "xml, x", "plain, p", "data/input.json"} {
				if !strings.Contains(stdout, want) {
					t.Errorf("help output should contain %q: %q", want, stdout)
				}
			}
			if _, err := os.Stat(base); !errors.Is(err, os.ErrNotExist) {
				t.Errorf("help should not create %s (stat err = %v)", base, err)
			}
		})
	}
}

func TestRootCommand_UnknownArgument(t *testing.T) {
	isolateEnv(t)
	base := setupJob(t, `[{"name":"a","processxml":"x"}]`)

	_, stderr, err := executeRoot(t, "--dir", base, "bogus")
	if err == nil {
		t.Fatal("expected error for unknown argument")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
	if !strings.Contains(stderr, `unknown argument "bogus"`) {
		t.Errorf("stderr should name the argument: %q", stderr)
	}
	if _, err := os.Stat(filepath.Join(base, "output")); !errors.Is(err, os.ErrNotExist) {
		t.Error("unknown argument should not create the output directory")
	}
}

func TestRootCommand_UnknownArgumentJSON(t *testing.T) {
	isolateEnv(t)

	stdout, _, err := executeRoot(t, "--json", "--dir", t.TempDir(), "yaml")
	if err == nil {
		t.Fatal("expected error for unknown argument")
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("output should be valid JSON: %v\nOutput: %s", err, stdout)
	}
	if code, ok := result["code"].(float64); !ok || int(code) != output.ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], output.ExitUserError)
	}
}

func TestRootCommand_TooManyArguments(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeRoot(t, "--dir", t.TempDir(), "xml", "plain")
	if err == nil {
		t.Fatal("expected error for two mode arguments")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}

func TestRootCommand_InvalidColor(t *testing.T) {
	isolateEnv(t)
	base := setupJob(t, `[]`)

	_, _, err := executeRoot(t, "--dir", base, "--color", "sometimes", "xml")
	if err == nil {
		t.Fatal("expected error for invalid --color")
	}
	if code := output.GetExitCode(err); code != output.ExitUserError {
		t.Errorf("exit code = %d, want %d", code, output.ExitUserError)
	}
}
