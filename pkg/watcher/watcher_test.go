package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kraitsura/lelscale/pkg/model"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var calls int32
	done := make(chan struct{}, 10)

	for i := 0; i < 5; i++ {
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			done <- struct{}{}
		})
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback never ran")
	}
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("expected 1 call, got %d", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Cancel()
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected no calls after cancel, got %d", got)
	}
}

func TestDebouncerDefaultDuration(t *testing.T) {
	if d := NewDebouncer(0); d.Duration() != DefaultDebounceDuration {
		t.Errorf("expected default duration, got %v", d.Duration())
	}
}

func TestCatalogWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gases.yaml")
	write := func(content string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	write("gases:\n  - id: a\n    lel: 1\n    uel: 2\n")

	reloaded := make(chan *model.Catalog, 4)
	w, err := NewCatalogWatcher(path, 20*time.Millisecond, func(c *model.Catalog, err error) {
		if err == nil {
			reloaded <- c
		}
	})
	if err != nil {
		t.Fatalf("NewCatalogWatcher: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Give the watcher a moment to start receiving events.
	time.Sleep(50 * time.Millisecond)
	write("gases:\n  - id: a\n    lel: 1\n    uel: 2\n  - id: b\n    lel: 3\n    uel: 9\n")

	select {
	case c := <-reloaded:
		if c.Len() != 2 {
			t.Errorf("expected 2 gases after reload, got %d", c.Len())
		}
	case <-time.After(3 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestCatalogWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gases.yaml")
	if err := os.WriteFile(path, []byte("gases:\n  - id: a\n    lel: 1\n    uel: 2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var calls int32
	w, err := NewCatalogWatcher(path, 10*time.Millisecond, func(*model.Catalog, error) {
		atomic.AddInt32(&calls, 1)
	})
	if err != nil {
		t.Fatalf("NewCatalogWatcher: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(150 * time.Millisecond)
	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("expected no reloads for unrelated file, got %d", got)
	}
}
