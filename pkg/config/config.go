// Package config loads bookshelf settings from bookshelf.toml and the
// environment.
//
// Settings are layered, later layers winning:
//
//  1. [DefaultConfig]
//  2. the TOML file (bookshelf.toml in the working directory, or --config)
//  3. a .env file and BOOKSHELF_* environment variables
//  4. command-line flags, applied by the CLI
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/bookshelf/pkg/cache"
	bserr "github.com/matzehuels/bookshelf/pkg/errors"
	"github.com/matzehuels/bookshelf/pkg/pipeline"
	"github.com/matzehuels/bookshelf/pkg/render/layout"
	"github.com/matzehuels/bookshelf/pkg/render/styles"
	"github.com/matzehuels/bookshelf/pkg/shelf"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "bookshelf.toml"

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config is the complete bookshelf configuration.
type Config struct {
	Shelf  ShelfConfig  `toml:"shelf" envPrefix:"SHELF_"`
	Data   DataConfig   `toml:"data" envPrefix:"DATA_"`
	Render RenderConfig `toml:"render" envPrefix:"RENDER_"`
	Covers CoversConfig `toml:"covers" envPrefix:"COVERS_"`
	Cache  CacheConfig  `toml:"cache" envPrefix:"CACHE_"`
}

// ShelfConfig configures the layout engine.
type ShelfConfig struct {
	// BooksPerRow is the shelf row width.
	BooksPerRow int `toml:"books_per_row" env:"BOOKS_PER_ROW"`
	// Seed fixes the tilt seed. Nil draws a fresh seed every render.
	Seed *int `toml:"seed,omitempty" env:"SEED"`
	// SeedRange bounds freshly drawn seeds to [0, SeedRange).
	SeedRange int `toml:"seed_range" env:"SEED_RANGE"`
	// ColorSeed fixes the colour draws. Nil re-rolls colours every render.
	ColorSeed *uint64 `toml:"color_seed,omitempty" env:"COLOR_SEED"`
}

// DataConfig locates the book data file.
type DataConfig struct {
	Books string `toml:"books" env:"BOOKS"`
}

// RenderConfig configures output.
type RenderConfig struct {
	Formats        []string `toml:"formats" env:"FORMATS" envSeparator:","`
	Style          string   `toml:"style" env:"STYLE"`
	Output         string   `toml:"output" env:"OUTPUT"`
	Width          float64  `toml:"width" env:"WIDTH"`
	SpineWidth     float64  `toml:"spine_width" env:"SPINE_WIDTH"`
	MinSpineHeight float64  `toml:"min_spine_height" env:"MIN_SPINE_HEIGHT"`
	MaxSpineHeight float64  `toml:"max_spine_height" env:"MAX_SPINE_HEIGHT"`
	TiltAngle      float64  `toml:"tilt_angle" env:"TILT_ANGLE"`
}

// CoversConfig configures cover colour extraction.
type CoversConfig struct {
	Timeout     time.Duration `toml:"timeout" env:"TIMEOUT"`
	Concurrency int           `toml:"concurrency" env:"CONCURRENCY"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend string        `toml:"backend" env:"BACKEND"`
	Dir     string        `toml:"dir" env:"DIR"`
	TTL     time.Duration `toml:"ttl" env:"TTL"`
	Redis   RedisConfig   `toml:"redis" envPrefix:"REDIS_"`
}

// RedisConfig configures the redis cache backend.
type RedisConfig struct {
	Addr     string `toml:"addr" env:"ADDR"`
	Password string `toml:"password,omitempty" env:"PASSWORD"`
	DB       int    `toml:"db" env:"DB"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	d := layout.DefaultDims()
	return &Config{
		Shelf: ShelfConfig{
			BooksPerRow: shelf.DefaultBooksPerRow,
			SeedRange:   shelf.DefaultSeedRange,
		},
		Data: DataConfig{
			Books: filepath.Join("_data", "books.json"),
		},
		Render: RenderConfig{
			Formats:        []string{pipeline.FormatHTML},
			Style:          pipeline.DefaultStyle,
			SpineWidth:     d.SpineWidth,
			MinSpineHeight: d.MinSpineHeight,
			MaxSpineHeight: d.MaxSpineHeight,
			TiltAngle:      d.TiltAngle,
		},
		Covers: CoversConfig{
			Timeout:     15 * time.Second,
			Concurrency: 4,
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     24 * time.Hour,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// Validate checks that the configuration is usable. Layout problems are
// reported as INVALID_CONFIG.
func (c *Config) Validate() error {
	if c.Shelf.BooksPerRow <= 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "shelf.books_per_row must be positive, got %d", c.Shelf.BooksPerRow)
	}
	if c.Shelf.Seed != nil && *c.Shelf.Seed < 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "shelf.seed must be non-negative, got %d", *c.Shelf.Seed)
	}
	if c.Shelf.SeedRange <= 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "shelf.seed_range must be positive, got %d", c.Shelf.SeedRange)
	}
	if len(c.Render.Formats) == 0 {
		return bserr.New(bserr.ErrCodeInvalidFormat, "render.formats is empty")
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if !styles.IsValid(c.Render.Style) {
		return bserr.New(bserr.ErrCodeInvalidStyle, "unknown style %q (want one of %v)", c.Render.Style, styles.Names())
	}
	if c.Render.MinSpineHeight > c.Render.MaxSpineHeight {
		return bserr.New(bserr.ErrCodeInvalidConfig, "render.min_spine_height %.0f exceeds max_spine_height %.0f",
			c.Render.MinSpineHeight, c.Render.MaxSpineHeight)
	}
	if c.Covers.Concurrency <= 0 {
		return bserr.New(bserr.ErrCodeInvalidConfig, "covers.concurrency must be positive, got %d", c.Covers.Concurrency)
	}
	switch c.Cache.Backend {
	case BackendFile, BackendNone:
	case BackendRedis:
		if c.Cache.Redis.Addr == "" {
			return bserr.New(bserr.ErrCodeInvalidConfig, "cache.redis.addr is required for the redis backend")
		}
	default:
		return bserr.New(bserr.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// Dims returns the layout measurements described by the render section.
func (c *Config) Dims() layout.Dims {
	d := layout.DefaultDims()
	d.SpineWidth = c.Render.SpineWidth
	d.MinSpineHeight = c.Render.MinSpineHeight
	d.MaxSpineHeight = c.Render.MaxSpineHeight
	d.TiltAngle = c.Render.TiltAngle
	d.MinWidth = c.Render.Width
	return d.Normalize()
}

// CacheDir returns the file cache directory, defaulting to the user cache
// directory.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve cache dir: %w", err)
	}
	return filepath.Join(base, "bookshelf"), nil
}

// RedisConfig returns the connection settings of the redis backend.
func (c *Config) RedisConfig() cache.RedisConfig {
	r := c.Cache.Redis
	return cache.RedisConfig{Addr: r.Addr, Password: r.Password, DB: r.DB}
}

// LoadFromFile loads configuration from a TOML file on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, bserr.Wrap(bserr.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, bserr.Wrap(bserr.ErrCodeInvalidConfig, err, "parse config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, bserr.New(bserr.ErrCodeInvalidConfig, "unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// SaveToFile writes the configuration as TOML.
func (c *Config) SaveToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config file: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
