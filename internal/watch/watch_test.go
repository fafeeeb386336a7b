package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
		t.Fatal(err)
	}

	w, err := New(path, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changed := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func() error {
			changed <- struct{}{}
			return nil
		})
	}()

	// Unrelated files in the same directory are ignored.
	if err := os.WriteFile(filepath.Join(dir, "other.json"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
		t.Fatal("onChange fired for an unrelated file")
	case <-time.After(100 * time.Millisecond):
	}

	if err := os.WriteFile(path, []byte(`[{"name":"a","processxml":"b"}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called after the input changed")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatcher_ReportsCallbackErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.json")
	if err := os.WriteFile(path, []byte("[]"), 0o600); err != nil {
		t.Fatal(err)
	}

	reported := make(chan error, 10)
	w, err := New(path, WithDebounce(10*time.Millisecond), WithErrorHandler(func(err error) { reported <- err }))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	boom := errors.New("export failed")
	go func() { _ = w.Run(ctx, func() error { return boom }) }()

	if err := os.WriteFile(path, []byte("[ ]"), 0o600); err != nil {
		t.Fatal(err)
	}
	select {
	case err := <-reported:
		if !errors.Is(err, boom) {
			t.Errorf("reported %v, want %v", err, boom)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("callback error was not reported")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent", "input.json"))
	if err == nil {
		t.Fatal("New() should fail when the directory does not exist")
	}
}

func TestWatcher_Path(t *testing.T) {
	dir := t.TempDir()
	w, err := New(filepath.Join(dir, "input.json"))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close() //nolint:errcheck

	if !filepath.IsAbs(w.Path()) || filepath.Base(w.Path()) != "input.json" {
		t.Errorf("Path() = %q", w.Path())
	}
}
