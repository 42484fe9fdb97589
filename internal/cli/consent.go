package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cardiorisk/internal/consent"
	"github.com/ppiankov/cardiorisk/internal/export"
)

var consentLimit int

// consentCmd represents the consent command
var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Inspect the anonymized consent log",
}

var consentListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print stored consent records as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, err := consent.NewSQLiteStore(cfg.Consent.Path)
		if err != nil {
			return fmt.Errorf("open consent log: %w", err)
		}
		defer func() { _ = store.Close() }()

		ctx := context.Background()
		total, err := store.Count(ctx)
		if err != nil {
			return err
		}
		records, err := store.List(ctx, consentLimit)
		if err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "%d of %d records from %s\n", len(records), total, cfg.Consent.Path)
		return export.WriteConsentCSV(os.Stdout, records)
	},
}

func init() {
	rootCmd.AddCommand(consentCmd)
	consentCmd.AddCommand(consentListCmd)

	consentListCmd.Flags().IntVar(&consentLimit, "limit", 50, "maximum records, newest first (0 for all)")
}
