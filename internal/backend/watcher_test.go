package backend

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.toon")
	if err := os.WriteFile(path, []byte("menu:\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("menu:\n\"Htop\"[m]: htop\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected watch error: %v", evt.Err)
		}
		abs, _ := filepath.Abs(path)
		if evt.Path != abs {
			t.Fatalf("expected event for %q, got %q", abs, evt.Path)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for change event")
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.toon")
	if err := os.WriteFile(path, []byte("menu:\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write sibling: %v", err)
	}

	select {
	case evt := <-w.Events():
		t.Fatalf("unexpected event for sibling write: %+v", evt)
	case <-time.After(600 * time.Millisecond):
	}
}

func TestStopClosesEventChannel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.toon")
	if err := os.WriteFile(path, []byte("menu:\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	w.Stop()

	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatalf("expected closed channel after stop")
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for channel close")
	}
}
