package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/agentstation/wardrobe"
	"github.com/agentstation/wardrobe/pkg/catalogs"
	"github.com/agentstation/wardrobe/pkg/logging"
)

func newTestApp(t *testing.T) (*App, string) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOG_OUTPUT", "discard")

	path := filepath.Join(t.TempDir(), "wardrobe.json")
	app, err := New("1.0.0", "abc123", "2026-01-01", "test")
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	app.Config().StorePath = path
	return app, path
}

// TestApp_New verifies app initialization.
func TestApp_New(t *testing.T) {
	app, _ := newTestApp(t)

	if app.Version() != "1.0.0" {
		t.Errorf("Version() = %s, want 1.0.0", app.Version())
	}
	if app.Commit() != "abc123" {
		t.Errorf("Commit() = %s, want abc123", app.Commit())
	}
	if app.Date() != "2026-01-01" {
		t.Errorf("Date() = %s, want 2026-01-01", app.Date())
	}
	if app.BuiltBy() != "test" {
		t.Errorf("BuiltBy() = %s, want test", app.BuiltBy())
	}
	if app.Logger() == nil {
		t.Error("Logger() returned nil")
	}
	if app.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr() = %s, want localhost:8080", app.ServerAddr())
	}
}

// TestApp_Wardrobe_Singleton verifies Wardrobe() returns the same instance
// until Shutdown.
func TestApp_Wardrobe_Singleton(t *testing.T) {
	app, _ := newTestApp(t)

	w1, err := app.Wardrobe()
	if err != nil {
		t.Fatalf("Wardrobe() failed: %v", err)
	}
	w2, err := app.Wardrobe()
	if err != nil {
		t.Fatalf("Wardrobe() failed on second call: %v", err)
	}
	if w1 != w2 {
		t.Error("Wardrobe() returned different instances, expected singleton")
	}

	if err := app.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}
	w3, err := app.Wardrobe()
	if err != nil {
		t.Fatalf("Wardrobe() failed after Shutdown: %v", err)
	}
	if w3 == w1 {
		t.Error("Wardrobe() after Shutdown should read the store again")
	}
}

// TestApp_Wardrobe_ThreadSafe verifies concurrent Wardrobe() calls are safe.
func TestApp_Wardrobe_ThreadSafe(t *testing.T) {
	app, _ := newTestApp(t)

	const goroutines = 50
	var wg sync.WaitGroup
	results := make([]wardrobe.Wardrobe, goroutines)
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = app.Wardrobe()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("Goroutine %d: Wardrobe() failed: %v", i, err)
		}
		if results[i] != results[0] {
			t.Errorf("Goroutine %d got a different wardrobe instance", i)
		}
	}
}

// TestApp_WithWardrobe verifies an injected wardrobe is used as is.
func TestApp_WithWardrobe(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LOG_OUTPUT", "discard")

	injected, err := wardrobe.New(wardrobe.WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatal(err)
	}
	if err := injected.Add(catalogs.NewItem("Scarf", "accessory", "red", "comfy", "bold", "casual")); err != nil {
		t.Fatal(err)
	}

	app, err := New("dev", "", "", "", WithWardrobe(injected), WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	w, err := app.Wardrobe()
	if err != nil {
		t.Fatalf("Wardrobe() failed: %v", err)
	}
	if len(w.Items()) != 1 {
		t.Errorf("Items() = %d, want 1", len(w.Items()))
	}
}

// TestApp_Execute runs commands end to end against a store file.
func TestApp_Execute(t *testing.T) {
	app, path := newTestApp(t)
	ctx := context.Background()

	err := app.Execute(ctx, []string{
		"add", "--store", path,
		"--id", "Wool coat", "--type", "jacket", "--colour", "camel",
		"--fit", "baggy", "--mood", "calm", "--dress-code", "formal",
	})
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := app.Shutdown(ctx); err != nil {
		t.Fatal(err)
	}

	stored, err := wardrobe.New(wardrobe.WithStorePath(path), wardrobe.WithLogger(logging.NewNopLogger()))
	if err != nil {
		t.Fatal(err)
	}
	if err := stored.Load(); err != nil {
		t.Fatalf("store not written: %v", err)
	}
	if got := stored.View(catalogs.CategoryJacket); len(got) != 1 || got[0].ID() != "Wool coat" {
		t.Errorf("jackets = %v, want Wool coat", got)
	}

	if err := app.Execute(ctx, []string{"remove", "--store", path, "Wool coat"}); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := app.Shutdown(ctx); err != nil {
		t.Fatal(err)
	}
	if err := app.Execute(ctx, []string{"remove", "--store", path, "Wool coat"}); err == nil {
		t.Error("removing a missing item should fail")
	}
}

// TestApp_Execute_UnknownCommand verifies cobra errors surface.
func TestApp_Execute_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(t)
	if err := app.Execute(context.Background(), []string{"wear"}); err == nil {
		t.Error("Execute() should fail for an unknown command")
	}
}
