package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/bookshelf/pkg/cache"
	"github.com/matzehuels/bookshelf/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the artifact and cover cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all cached artifacts and cover images",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			var count int
			var where string
			switch cfg.Cache.Backend {
			case config.BackendNone:
				printInfo("Caching is disabled")
				return nil
			case config.BackendRedis:
				where = "Redis: " + cfg.Cache.Redis.Addr
				count, err = clearRedisCache(cmd.Context(), cfg)
			default:
				var dir string
				if dir, err = cfg.CacheDir(); err != nil {
					return fmt.Errorf("get cache dir: %w", err)
				}
				where = "Directory: " + dir
				count, err = clearFileCache(dir)
			}
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}
			printSuccess("Cleared %d cached entries", count)
			printDetail("%s", where)
			return nil
		},
	}
}

// clearFileCache empties the file cache in dir. A missing directory is an
// empty cache.
func clearFileCache(dir string) (int, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return 0, err
	}
	return fc.Clear()
}

// clearRedisCache deletes this tool's keys from the configured Redis
// database, leaving other keys alone.
func clearRedisCache(ctx context.Context, cfg *config.Config) (int, error) {
	rc, err := cache.NewRedisCache(ctx, cfg.RedisConfig())
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return rc.ClearPrefix(ctx, redisKeyPrefix)
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			dir, err := cfg.CacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Fprintln(stdout, dir)
			return nil
		},
	}
}
