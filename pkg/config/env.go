package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	bserr "github.com/matzehuels/bookshelf/pkg/errors"
)

// EnvPrefix prefixes every environment variable the config reads,
// e.g. BOOKSHELF_SHELF_BOOKS_PER_ROW or BOOKSHELF_CACHE_REDIS_ADDR.
const EnvPrefix = "BOOKSHELF_"

// ApplyEnv loads the given .env files (".env" when none are given; missing
// files are ignored) and overlays any BOOKSHELF_* variables onto c.
// Variables already set in the process environment win over .env entries.
func (c *Config) ApplyEnv(dotenv ...string) error {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return bserr.Wrap(bserr.ErrCodeInvalidConfig, err, "load %s", path)
		}
	}
	if err := env.ParseWithOptions(c, env.Options{Prefix: EnvPrefix}); err != nil {
		return bserr.Wrap(bserr.ErrCodeInvalidConfig, err, "parse environment")
	}
	return nil
}
