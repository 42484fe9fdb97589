package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/cardiorisk/internal/export"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/pipeline"
	"github.com/ppiankov/cardiorisk/internal/report"
	"github.com/ppiankov/cardiorisk/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	batchFormats []string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Assess many patients from a CSV file in parallel",
	Long: `Batch assesses every row of a CSV file concurrently:
- Read patients from the file (header row with form field names,
  or the header of a previous CSV export)
- Call the prediction service with a shared rate limit
- Write per-patient reports into row-NNNN directories
- Write summary.csv and summary.xlsx with one row per patient

Example:
  cardiorisk batch patients.csv
  cardiorisk batch patients.csv --concurrency 8 --output-dir ./reports
  cardiorisk batch patients.csv --formats json,md,pdf --lang ru`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./cardiorisk-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().StringSliceVar(&batchFormats, "formats", []string{"json", "md"}, "per-patient export formats")

	batchCmd.Flags().StringVar(&language, "lang", "", "report language (en, ru, kr)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable prediction cache")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM second opinion")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cfg)
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	lang := i18n.Pick("", language, cfg.Output.Language)

	formats, err := parseFormats(batchFormats)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	banner("cardiorisk Batch Processing")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "  Rate limit:   %.1f req/s\n", cfg.Concurrency.Rate)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if cfg.LLM.Provider != "" {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	processor := worker.NewBatchProcessor(deps.pipeline, cfg.Concurrency.Workers, cfg.Concurrency.Rate, cfg.Concurrency.Burst)

	fmt.Fprintf(os.Stderr, "⚙️  Assessing patients from %s...\n\n", file)
	results, err := processor.ProcessFile(ctx, file, lang)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	opts := exportOptions(cfg, lang)
	var (
		done     []*model.Assessment
		failures []batchFailure
	)
	for _, result := range results {
		if result.Error != nil {
			failures = append(failures, batchFailure{Line: result.Line, Err: result.Error})
			fmt.Fprintf(os.Stderr, "✗ line %d: %v\n", result.Line, result.Error)
			continue
		}

		a := result.Assessment
		dir := filepath.Join(outputDir, fmt.Sprintf("row-%04d", result.Line))
		if _, err := export.WriteAll(ctx, dir, a, formats, opts); err != nil {
			failures = append(failures, batchFailure{Line: result.Line, Err: err})
			fmt.Fprintf(os.Stderr, "✗ line %d: %v\n", result.Line, err)
			continue
		}
		done = append(done, a)

		if !a.Validation.IsValid {
			fmt.Fprintf(os.Stderr, "! line %d: input incomplete (%d errors)\n", result.Line, len(a.Validation.Errors))
			continue
		}
		fmt.Fprintf(os.Stderr, "✓ line %d: %s (%s)\n", result.Line,
			report.FormatPercent(a.Prediction.RiskProbabilityPercent),
			a.Prediction.RiskCategory.Or(report.Placeholder))
	}

	if err := writeSummary(outputDir, done, failures, lang); err != nil {
		return err
	}

	banner("Batch Complete")
	fmt.Fprintf(os.Stderr, "  Total:     %d patients\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", len(done))
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", len(failures))
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

type batchFailure struct {
	Line int
	Err  error
}

// writeSummary writes summary.csv, summary.xlsx and, when any row failed,
// errors.csv into dir.
func writeSummary(dir string, done []*model.Assessment, failures []batchFailure, lang i18n.Language) error {
	if len(done) > 0 {
		f, err := os.Create(filepath.Join(dir, "summary.csv"))
		if err != nil {
			return fmt.Errorf("create summary: %w", err)
		}
		if err := export.WriteCSV(f, done...); err != nil {
			_ = f.Close()
			return fmt.Errorf("write summary: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("close summary: %w", err)
		}

		book, err := export.Workbook(done...)
		if err != nil {
			return fmt.Errorf("build workbook: %w", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "summary.xlsx"), book, 0644); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}

	if len(failures) == 0 {
		return nil
	}
	f, err := os.Create(filepath.Join(dir, "errors.csv"))
	if err != nil {
		return fmt.Errorf("create error log: %w", err)
	}
	w := csv.NewWriter(f)
	_ = w.Write([]string{"line", "error", "message"})
	for _, fail := range failures {
		_ = w.Write([]string{
			fmt.Sprint(fail.Line),
			fail.Err.Error(),
			i18n.T(lang, pipeline.MessageKey(fail.Err)),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = f.Close()
		return fmt.Errorf("write error log: %w", err)
	}
	return f.Close()
}
