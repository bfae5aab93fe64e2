package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_DisabledByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sacrifice.log")

	logger, closer, err := NewLogger(false, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closer != nil {
		t.Error("expected nil closer when debug=false")
	}
	logger.Info("dropped")

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no log file when debug=false")
	}
}

func TestNewLogger_EnabledWithDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sacrifice.log")

	logger, closer, err := NewLogger(true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if closer == nil {
		t.Fatal("expected non-nil closer when debug=true")
	}

	logger.Info("point", "side", "left", "left", 3, "right", 1)
	logger.Debug("pass through", "segment", 6)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	for _, want := range []string{"msg=point", "side=left", "left=3", "msg=\"pass through\"", "segment=6"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in log, got %q", want, out)
		}
	}
}

func TestNewLogger_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sacrifice.log")

	if err := os.WriteFile(path, make([]byte, MaxLogSize+1), 0o644); err != nil {
		t.Fatalf("failed to write large log: %v", err)
	}

	_, closer, err := NewLogger(true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log dir: %v", err)
	}
	rotated := false
	for _, e := range entries {
		if e.Name() != "sacrifice.log" && strings.HasPrefix(e.Name(), "sacrifice-") && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	if !rotated {
		t.Error("expected a rotated log file")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("failed to stat new log: %v", err)
	}
	if info.Size() > MaxLogSize {
		t.Errorf("expected fresh log file, got %d bytes", info.Size())
	}
}

func TestNewLogger_SmallFileKept(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sacrifice.log")
	if err := os.WriteFile(path, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("failed to write log: %v", err)
	}

	_, closer, err := NewLogger(true, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	closer.Close()

	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected no rotation for a small log, got %d files", len(entries))
	}
}
