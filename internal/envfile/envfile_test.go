package envfile

import (
	"os"
	"path/filepath"
	"testing"
)

func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRead_NonexistentFile(t *testing.T) {
	values, err := Read("/nonexistent/.env")
	if err != nil {
		t.Fatalf("expected nil for nonexistent file, got %v", err)
	}
	if values != nil {
		t.Errorf("expected nil map, got %v", values)
	}
}

func TestRead_ParsesPairs(t *testing.T) {
	path := writeEnv(t, `# output settings
XMLIFYME_OUTPUT=/srv/out
export XMLIFYME_EXTENSION=".txt"
XMLIFYME_INPUT='data/in.json'

not a pair
=novalue
XMLIFYME_OUTPUT=/ignored
`)

	values, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{
		"XMLIFYME_OUTPUT":    "/srv/out",
		"XMLIFYME_EXTENSION": ".txt",
		"XMLIFYME_INPUT":     "data/in.json",
	}
	if len(values) != len(want) {
		t.Errorf("got %d values, want %d: %v", len(values), len(want), values)
	}
	for k, v := range want {
		if values[k] != v {
			t.Errorf("%s = %q, want %q", k, values[k], v)
		}
	}
}

func TestRead_DoesNotTouchEnvironment(t *testing.T) {
	path := writeEnv(t, "TEST_ENVFILE_UNTOUCHED=from_file\n")
	t.Setenv("TEST_ENVFILE_UNTOUCHED", "")

	if _, err := Read(path); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("TEST_ENVFILE_UNTOUCHED"); got != "" {
		t.Errorf("Read should not set env vars, got %q", got)
	}
}

func TestChain(t *testing.T) {
	env := map[string]string{"A": "env", "EMPTY": ""}
	local := map[string]string{"A": "local", "B": "local", "EMPTY": "local"}
	shared := map[string]string{"B": "shared", "C": "shared"}

	lookup := Chain(func(k string) string { return env[k] }, local, shared)

	tests := []struct{ key, want string }{
		{"A", "env"},
		{"B", "local"},
		{"C", "shared"},
		{"EMPTY", "local"},
		{"MISSING", ""},
	}
	for _, tt := range tests {
		if got := lookup(tt.key); got != tt.want {
			t.Errorf("lookup(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestChain_NilEnvAndMaps(t *testing.T) {
	lookup := Chain(nil, nil, map[string]string{"K": "v"})
	if got := lookup("K"); got != "v" {
		t.Errorf("lookup(K) = %q, want v", got)
	}
}

func TestParseEnvLine(t *testing.T) {
	tests := []struct {
		line   string
		key    string
		value  string
		wantOK bool
	}{
		{"KEY=value", "KEY", "value", true},
		{"KEY = spaced ", "KEY", "spaced", true},
		{`KEY="quoted value"`, "KEY", "quoted value", true},
		{"KEY='single'", "KEY", "single", true},
		{"KEY=a=b", "KEY", "a=b", true},
		{"export KEY=x", "KEY", "x", true},
		{`KEY="`, "KEY", `"`, true},
		{"novalue", "", "", false},
		{"=x", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			key, value, ok := parseEnvLine(tt.line)
			if ok != tt.wantOK || key != tt.key || value != tt.value {
				t.Errorf("parseEnvLine(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.line, key, value, ok, tt.key, tt.value, tt.wantOK)
			}
		})
	}
}
