package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cardiorisk/internal/cache"
)

// cacheCmd represents the cache command
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the prediction cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached prediction",
	Long:  `Clear empties the disk cache and, when configured, the cardiorisk keys in redis.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Cache.Enabled = true

		ctx := context.Background()
		c, err := cache.FromConfig(ctx, cfg.Cache)
		if err != nil {
			return fmt.Errorf("open cache: %w", err)
		}
		defer func() { _ = c.Close() }()

		if err := c.Clear(ctx); err != nil {
			return fmt.Errorf("clear cache: %w", err)
		}
		fmt.Printf("✓ Cache cleared\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cacheCmd)
	cacheCmd.AddCommand(cacheClearCmd)
}
