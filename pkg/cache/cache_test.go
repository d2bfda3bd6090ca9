package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// Miss before Set
	_, hit, err := c.Get(ctx, "drawing:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected miss for unset key")
	}

	want := []byte("<svg/>")
	if err := c.Set(ctx, "drawing:abc", want, 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	got, hit, err := c.Get(ctx, "drawing:abc")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if !hit {
		t.Fatal("expected hit after Set")
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}

	if err := c.Delete(ctx, "drawing:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	_, hit, _ = c.Get(ctx, "drawing:abc")
	if hit {
		t.Error("expected miss after Delete")
	}

	// Deleting a missing key is not an error
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiration(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	// An already-expired TTL must read back as a miss.
	if err := c.Set(ctx, "short-lived", []byte("x"), -time.Second); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	_, hit, err := c.Get(ctx, "short-lived")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("expected expired entry to be a miss")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := DrawingKeyOpts{
		Seed:       42,
		Width:      800,
		Height:     600,
		Separation: 5,
		Quantity:   50,
		Format:     "svg",
		Style:      "flat",
	}

	if k.DrawingKey(base) != k.DrawingKey(base) {
		t.Error("DrawingKey should be deterministic")
	}

	// Every parameter influences the rendered bytes, so every
	// parameter must influence the key.
	variants := map[string]DrawingKeyOpts{}
	for name, mutate := range map[string]func(*DrawingKeyOpts){
		"seed":       func(o *DrawingKeyOpts) { o.Seed = 43 },
		"width":      func(o *DrawingKeyOpts) { o.Width = 801 },
		"height":     func(o *DrawingKeyOpts) { o.Height = 601 },
		"separation": func(o *DrawingKeyOpts) { o.Separation = 6 },
		"quantity":   func(o *DrawingKeyOpts) { o.Quantity = 51 },
		"format":     func(o *DrawingKeyOpts) { o.Format = "png" },
		"style":      func(o *DrawingKeyOpts) { o.Style = "sketch" },
	} {
		o := base
		mutate(&o)
		variants[name] = o
	}
	for name, o := range variants {
		if k.DrawingKey(o) == k.DrawingKey(base) {
			t.Errorf("changing %s should change the key", name)
		}
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "tenant:7:")

	opts := DrawingKeyOpts{Seed: 1, Width: 100, Height: 100, Quantity: 10, Format: "svg", Style: "flat"}
	if got, want := scoped.DrawingKey(opts), "tenant:7:"+inner.DrawingKey(opts); got != want {
		t.Errorf("DrawingKey = %q, want %q", got, want)
	}

	// Nil inner falls back to the default keyer
	fallback := NewScopedKeyer(nil, "p:")
	if got, want := fallback.DrawingKey(opts), "p:"+inner.DrawingKey(opts); got != want {
		t.Errorf("DrawingKey with nil inner = %q, want %q", got, want)
	}
}
