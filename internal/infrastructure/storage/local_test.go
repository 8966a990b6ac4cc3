package storage

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

func TestLocalStore_SaveGeneratesStableNamePattern(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	store.now = func() time.Time { return time.UnixMilli(1700000000000) }

	name, err := store.Save(context.Background(), "resume", "My Resume.PDF", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	pattern := regexp.MustCompile(`^resume-1700000000000-[0-9a-f]{9}\.pdf$`)
	if !pattern.MatchString(name) {
		t.Fatalf("unexpected stored name %q", name)
	}

	data, err := os.ReadFile(filepath.Join(store.root, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestLocalStore_SaveNamesDoNotCollide(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		name, err := store.Save(context.Background(), "resume", "cv.pdf", strings.NewReader("x"))
		if err != nil {
			t.Fatalf("Save #%d: %v", i, err)
		}
		if seen[name] {
			t.Fatalf("name collision on %q", name)
		}
		seen[name] = true
	}
}

func TestLocalStore_RemoveDeletesFile(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}
	name, err := store.Save(context.Background(), "evidence", "shot.png", strings.NewReader("img"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := store.Remove(context.Background(), name); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(store.root, name)); !os.IsNotExist(statErr) {
		t.Fatalf("file still present after Remove")
	}

	// Removing again is not an error.
	if err := store.Remove(context.Background(), name); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestLocalStore_RemoveRejectsPathTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	for _, path := range []string{"../outside.txt", "a/b.pdf", "/etc/passwd"} {
		if err := store.Remove(context.Background(), path); err == nil {
			t.Fatalf("expected rejection for path %q", path)
		}
	}
}

func TestLocalStore_SaveCancelledContext(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, "resume", "cv.pdf", strings.NewReader("x")); err == nil {
		t.Fatalf("expected error saving with a cancelled context")
	}
}

func TestNewLocalStore_EmptyRootRejected(t *testing.T) {
	if _, err := NewLocalStore(""); err == nil {
		t.Fatalf("expected error for empty root")
	}
}
