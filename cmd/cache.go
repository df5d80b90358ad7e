package cmd

import (
	"fmt"
	"time"

	"github.com/brogergvhs/questgraph/internal/cache"
	"github.com/brogergvhs/questgraph/internal/config"
	"github.com/brogergvhs/questgraph/internal/util"

	"github.com/spf13/cobra"
)

var flagOlderThan time.Duration

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or purge the page cache",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, path, err := openCache()
		if err != nil {
			return err
		}
		defer func() {
			_ = c.Close()
		}()

		n, err := c.Len(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s cached\n", path, util.Plural(n, "page"))
		return nil
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove cached pages (all, or those older than --older-than)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, _, err := openCache()
		if err != nil {
			return err
		}
		defer func() {
			_ = c.Close()
		}()

		n, err := c.Purge(cmd.Context(), flagOlderThan)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", util.Plural(int(n), "page"))
		return nil
	},
}

func openCache() (*cache.Cache, string, error) {
	cfg, _, err := loadConfig(config.Options{})
	if err != nil {
		return nil, "", err
	}
	if cfg.CachePath == "" {
		return nil, "", fmt.Errorf("page cache is disabled (cache_path is empty)")
	}

	c, err := cache.Open(cfg.CachePath, cfg.CacheTTL)
	if err != nil {
		return nil, "", err
	}
	return c, cfg.CachePath, nil
}

func init() {
	cachePurgeCmd.Flags().DurationVar(&flagOlderThan, "older-than", 0, "only remove pages fetched longer ago than this (e.g. 72h)")
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
