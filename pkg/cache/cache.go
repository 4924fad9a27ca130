// Package cache provides pluggable byte caches for rendered artifacts and
// downloaded cover images.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under a directory (CLI default)
//   - [RedisCache]: a shared Redis instance, for build machines that render
//     the same shelf repeatedly
//   - [NullCache]: caching disabled
//
// Keys are produced by a [Keyer] so every component agrees on the key space.
// Nothing in a cache is authoritative: entries can be dropped at any time and
// the pipeline simply recomputes them.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// Cache stores opaque byte values with an optional time-to-live.
// A ttl of 0 means the entry does not expire.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys.
type Keyer interface {
	// ArtifactKey identifies a rendered output of a book list.
	ArtifactKey(booksHash string, opts ArtifactKeyOpts) string
	// CoverKey identifies a downloaded cover image.
	CoverKey(url string) string
}

// ArtifactKeyOpts lists everything a rendered artifact depends on besides
// the books themselves.
type ArtifactKeyOpts struct {
	Format      string  `json:"format"`
	Style       string  `json:"style"`
	BooksPerRow int     `json:"books_per_row"`
	Seed        int     `json:"seed"`
	ColorSeed   uint64  `json:"color_seed"`
	Width       float64 `json:"width,omitempty"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ArtifactKey returns "artifact:<sha256(booksHash, opts)>".
func (DefaultKeyer) ArtifactKey(booksHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", booksHash, opts)
}

// CoverKey returns "cover:<sha256(url)>".
func (DefaultKeyer) CoverKey(url string) string {
	return hashKey("cover", url)
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// hashKey joins prefix and the digest of the JSON-encoded parts.
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// NullCache misses on every Get and drops every Set. The CLI uses it for
// --no-cache and backend = "none".
type NullCache struct{}

// NewNullCache returns a NullCache.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                     { return nil }
func (*NullCache) Close() error                                             { return nil }

var _ Cache = (*NullCache)(nil)
