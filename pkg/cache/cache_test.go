package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/bookshelf/pkg/observability"
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
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}

	if _, hit, err := c.Get(ctx, "missing"); hit || err != nil {
		t.Errorf("Get(missing) = hit %v, err %v; want miss", hit, err)
	}

	if err := c.Set(ctx, "shelf", []byte("<div/>"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "shelf")
	if err != nil || !hit {
		t.Fatalf("Get(shelf) = hit %v, err %v; want hit", hit, err)
	}
	if string(data) != "<div/>" {
		t.Errorf("Get(shelf) = %q, want %q", data, "<div/>")
	}

	if err := c.Delete(ctx, "shelf"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "shelf"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "shelf"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v; want clean miss", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear error: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() = %d, want 3", n)
	}
	entries, _ := os.ReadDir(c.Dir())
	if len(entries) != 0 {
		t.Errorf("cache dir still holds %d entries", len(entries))
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	base := ArtifactKeyOpts{Format: "svg", Style: "palette", BooksPerRow: 15, Seed: 3, ColorSeed: 7}
	k1 := k.ArtifactKey("hash", base)
	if !strings.HasPrefix(k1, "artifact:") {
		t.Errorf("ArtifactKey prefix: %s", k1)
	}
	if k1 != k.ArtifactKey("hash", base) {
		t.Error("ArtifactKey should be deterministic")
	}

	variants := []ArtifactKeyOpts{
		{Format: "html", Style: "palette", BooksPerRow: 15, Seed: 3, ColorSeed: 7},
		{Format: "svg", Style: "cover", BooksPerRow: 15, Seed: 3, ColorSeed: 7},
		{Format: "svg", Style: "palette", BooksPerRow: 12, Seed: 3, ColorSeed: 7},
		{Format: "svg", Style: "palette", BooksPerRow: 15, Seed: 4, ColorSeed: 7},
		{Format: "svg", Style: "palette", BooksPerRow: 15, Seed: 3, ColorSeed: 8},
	}
	for _, v := range variants {
		if k.ArtifactKey("hash", v) == k1 {
			t.Errorf("ArtifactKey(%+v) collides with base options", v)
		}
	}
	if k.ArtifactKey("other", base) == k1 {
		t.Error("different book hashes should produce different keys")
	}

	if c1 := k.CoverKey("https://a/1.jpg"); !strings.HasPrefix(c1, "cover:") || c1 == k.CoverKey("https://a/2.jpg") {
		t.Errorf("CoverKey unexpected: %s", c1)
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "site:blog:")
	if key := scoped.CoverKey("https://a/1.jpg"); key != "site:blog:"+NewDefaultKeyer().CoverKey("https://a/1.jpg") {
		t.Errorf("ScopedKeyer CoverKey unexpected: %s", key)
	}
	if key := scoped.ArtifactKey("h", ArtifactKeyOpts{}); !strings.HasPrefix(key, "site:blog:artifact:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", key)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	scoped := NewScopedKeyer(nil, "prefix:")
	if key := scoped.CoverKey("u"); !strings.HasPrefix(key, "prefix:cover:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

type countingHooks struct {
	observability.Noop
	hits, misses, sets int
	bytes              int
}

func (h *countingHooks) OnCacheHit(context.Context, string)  { h.hits++ }
func (h *countingHooks) OnCacheMiss(context.Context, string) { h.misses++ }
func (h *countingHooks) OnCacheSet(_ context.Context, _ string, size int) {
	h.sets++
	h.bytes += size
}

func TestInstrument(t *testing.T) {
	hooks := &countingHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := Instrument(fc, "artifact")

	_, _, _ = c.Get(ctx, "k")
	_ = c.Set(ctx, "k", []byte("12345"), 0)
	_, _, _ = c.Get(ctx, "k")

	if hooks.misses != 1 || hooks.hits != 1 || hooks.sets != 1 || hooks.bytes != 5 {
		t.Errorf("hooks = %+v, want 1 miss, 1 hit, 1 set of 5 bytes", *hooks)
	}
}

func TestFileCacheSetLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for i := range 3 {
		if err := c.Set(ctx, "cover:x", []byte{byte(i)}, time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	matches, err := filepath.Glob(filepath.Join(c.Dir(), "*", ".tmp-*"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
	if data, hit, _ := c.Get(ctx, "cover:x"); !hit || len(data) != 1 || data[0] != 2 {
		t.Errorf("Get = %v, %v; want the last write", data, hit)
	}
}
