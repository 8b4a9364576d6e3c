package codebase

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestScanAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "card.yaml"), "name: com.example.Card\nsuperClass: com.example.Base\n")
	writeFile(t, filepath.Join(dir, "nested", "base.json"), `{"name": "com.example.Base"}`)
	writeFile(t, filepath.Join(dir, "broken.yml"), "name: [unclosed\n")
	writeFile(t, filepath.Join(dir, ".hidden", "skip.yaml"), "name: com.example.Hidden\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "name: com.example.Text\n")

	cb := New(dir)
	if err := cb.ScanAll(); err != nil {
		t.Fatalf("ScanAll() error: %v", err)
	}

	for _, name := range []string{"com.example.Card", "com.example.Base"} {
		if cb.FindClass(name) == nil {
			t.Errorf("FindClass(%s) = nil", name)
		}
	}
	for _, name := range []string{"com.example.Hidden", "com.example.Text"} {
		if cb.FindClass(name) != nil {
			t.Errorf("FindClass(%s) found a class that should have been skipped", name)
		}
	}
	if got := len(cb.Index().Ancestors(cb.FindClass("com.example.Card"))); got != 2 {
		t.Errorf("len(Ancestors(Card)) = %d, want 2", got)
	}

	errs := cb.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %v, want one parse error", errs)
	}
	if _, ok := errs[filepath.Join(dir, "broken.yml")]; !ok {
		t.Errorf("Errors() = %v, want broken.yml", errs)
	}

	cb.RemoveFile(filepath.Join(dir, "card.yaml"))
	if cb.FindClass("com.example.Card") != nil {
		t.Error("FindClass(Card) after RemoveFile != nil")
	}
}

func TestFileWatcherScan(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.yaml")
	writeFile(t, path, "name: com.example.Card\n")

	cb := New(dir)
	w := NewFileWatcher(cb, time.Hour)
	var calls int
	w.OnChange = func(changed []string) { calls++ }

	if got := w.Scan(); len(got) != 1 {
		t.Errorf("first Scan() = %v, want the new file", got)
	}
	if cb.FindClass("com.example.Card") == nil {
		t.Fatal("FindClass(Card) = nil after first scan")
	}
	if got := w.Scan(); len(got) != 0 {
		t.Errorf("second Scan() = %v, want no changes", got)
	}

	writeFile(t, path, "name: com.example.Renamed\n")
	later := time.Now().Add(time.Minute)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}
	if got := w.Scan(); len(got) != 1 {
		t.Errorf("Scan() after modification = %v, want one change", got)
	}
	if cb.FindClass("com.example.Renamed") == nil || cb.FindClass("com.example.Card") != nil {
		t.Error("index not refreshed after modification")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if got := w.Scan(); len(got) != 1 {
		t.Errorf("Scan() after removal = %v, want one change", got)
	}
	if cb.FindClass("com.example.Renamed") != nil {
		t.Error("removed class still indexed")
	}
	if calls != 3 {
		t.Errorf("OnChange calls = %d, want 3", calls)
	}
}
