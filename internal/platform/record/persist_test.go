package record

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileLoad_MissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "nothing.db"))
	lines, err := f.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lines != nil {
		t.Errorf("expected no lines, got %v", lines)
	}
}

func TestFileSaveLoadRoundTrip(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "patients.db"))
	in := []string{"1|Ann|31", "2|Bob|45"}
	if err := f.Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip mismatch: %v", out)
	}
}

func TestFileSave_FullRewrite(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "doctors.db"))
	if err := f.Save([]string{"1|a", "2|b", "3|c"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := f.Save([]string{"2|b"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != "2|b" {
		t.Errorf("expected prior content replaced, got %v", out)
	}
}

func TestFileSave_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	f := NewFile(filepath.Join(dir, "meds.db"))
	if err := f.Save([]string{"1|x|1|1.00"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, e := range entries {
		if strings.Contains(e.Name(), ".tmp-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if err := m.Save([]string{"1|a"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := m.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 || out[0] != "1|a" {
		t.Errorf("unexpected lines: %v", out)
	}
	// Mutating the returned slice must not corrupt the stored copy.
	out[0] = "tampered"
	again, _ := m.Load()
	if again[0] != "1|a" {
		t.Errorf("stored lines were aliased: %v", again)
	}
}
