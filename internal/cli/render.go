package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cardiorisk/internal/export"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
)

var renderOutput string

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render <assessment.json>",
	Short: "Re-render a saved assessment",
	Long: `Render reads an assessment written by "assess --json" or a batch run
and renders it again, optionally in another language. The prediction
service is not called.

The output format follows the file extension (.md, .html, .pdf, .csv,
.xlsx, .json).

Example:
  cardiorisk render result.json --lang kr --output report.html
  cardiorisk render row-0002/cvd_risk_report_20260315_1200.json -o report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (format from extension)")
	renderCmd.Flags().StringVar(&language, "lang", "", "report language (en, ru, kr)")
	renderCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	_ = renderCmd.MarkFlagRequired("output")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cfg)

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read assessment: %w", err)
	}
	var a model.Assessment
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("parse assessment: %w", err)
	}

	f, err := export.ParseFormat(strings.TrimPrefix(filepath.Ext(renderOutput), "."))
	if err != nil {
		return err
	}
	lang := i18n.Pick("", language, a.Language, cfg.Output.Language)

	if err := export.WriteFile(cmd.Context(), renderOutput, f, &a, exportOptions(cfg, lang)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ %s: %s\n", strings.ToUpper(string(f)), renderOutput)
	return nil
}
