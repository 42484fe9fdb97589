package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ppiankov/cardiorisk/internal/consent"
	"github.com/ppiankov/cardiorisk/internal/export"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/normalize"
	"github.com/ppiankov/cardiorisk/internal/report"
)

var (
	inputPath   string
	language    string
	jsonOut     string
	mdOut       string
	csvOut      string
	xlsxOut     string
	htmlOut     string
	pdfOut      string
	noCache     bool
	noFooter    bool
	timeout     time.Duration
	llmEnabled  bool
	llmProvider string
	llmModel    string
	saveConsent bool
)

// assessCmd represents the assess command
var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Assess one patient",
	Long: `Assess runs one patient through the full pipeline:
- Validate and complete the input (BMI, age from date of birth)
- Request a prediction from the risk service
- Add advisory notes and the narrative interpretation
- Write the requested exports

The input file is YAML or JSON using the form field names
(age_years, height, weight, ap_hi, ap_lo, cholesterol, gluc, gender,
smoke, alco, active, region). Use "-" to read from stdin.

Without output flags the clinician report is printed as Markdown.

Example:
  cardiorisk assess --input patient.yaml
  cardiorisk assess --input patient.yaml --lang ru --pdf report.pdf
  cat patient.json | cardiorisk assess --input - --json result.json`,
	RunE: runAssess,
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().StringVarP(&inputPath, "input", "i", "", "patient file (YAML or JSON, - for stdin)")
	assessCmd.Flags().StringVar(&language, "lang", "", "report language (en, ru, kr)")
	assessCmd.Flags().StringVar(&jsonOut, "json", "", "write full assessment JSON to file")
	assessCmd.Flags().StringVar(&mdOut, "md", "", "write clinician report Markdown to file")
	assessCmd.Flags().StringVar(&csvOut, "csv", "", "write one-row CSV to file")
	assessCmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write Excel workbook to file")
	assessCmd.Flags().StringVar(&htmlOut, "html", "", "write printable HTML report to file")
	assessCmd.Flags().StringVar(&pdfOut, "pdf", "", "print report to PDF (requires Chrome)")
	assessCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable prediction cache")
	assessCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
	assessCmd.Flags().DurationVar(&timeout, "timeout", 0, "prediction service timeout (default from config)")
	assessCmd.Flags().BoolVar(&saveConsent, "consent", false, "store an anonymized copy in the consent log")

	// LLM flags
	assessCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM second opinion")
	assessCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, ollama)")
	assessCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")

	_ = assessCmd.MarkFlagRequired("input")
}

func runAssess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyRunFlags(cfg)
	if llmEnabled && cfg.LLM.Provider == "openai" && cfg.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	form, err := readForm(inputPath)
	if err != nil {
		return err
	}
	patient := normalize.Patient(form, time.Now())
	lang := i18n.Pick("", language, patient.Language, cfg.Output.Language)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	if cfg.Output.Verbose {
		fmt.Fprintf(os.Stderr, "⚙️  Requesting prediction from %s...\n", cfg.API.BaseURL)
	}
	a, err := deps.pipeline.Assess(ctx, patient, lang)
	if err != nil {
		return fmt.Errorf("%s: %w", i18n.T(lang, "error_api_failed"), err)
	}

	if !a.Validation.IsValid {
		fmt.Fprintf(os.Stderr, "✗ Input incomplete: %s\n", strings.Join(a.Validation.Errors, ", "))
	} else {
		fmt.Fprintf(os.Stderr, "✓ Risk: %s (%s)\n", report.FormatPercent(a.Prediction.RiskProbabilityPercent), a.Prediction.RiskCategory.Or(report.Placeholder))
	}
	for _, w := range a.SoftWarnings {
		fmt.Fprintf(os.Stderr, "  ! %s\n", w.Text(string(lang)))
	}

	outputs := map[export.Format]string{
		export.JSON:     jsonOut,
		export.Markdown: mdOut,
		export.CSV:      csvOut,
		export.XLSX:     xlsxOut,
		export.HTML:     htmlOut,
		export.PDF:      pdfOut,
	}
	opts := exportOptions(cfg, lang)
	wrote := false
	for _, f := range export.Formats {
		path := outputs[f]
		if path == "" {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		if err := export.WriteFile(ctx, path, f, a, opts); err != nil {
			return fmt.Errorf("write %s: %w", f, err)
		}
		fmt.Fprintf(os.Stderr, "✓ %s: %s\n", strings.ToUpper(string(f)), path)
		wrote = true
	}
	if !wrote {
		fmt.Print(report.Markdown(a, lang, cfg.Output.IncludeFooter))
	}

	if saveConsent {
		if err := storeConsent(ctx, cfg, a); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Consent recorded in %s\n", cfg.Consent.Path)
	}

	return nil
}

// applyRunFlags overlays command flags that only apply to this run.
func applyRunFlags(cfg *model.Config) {
	if noCache {
		cfg.Cache.Enabled = false
	}
	if noFooter {
		cfg.Output.IncludeFooter = false
	}
	if timeout > 0 {
		cfg.API.Timeout = timeout
	}
	cfg.Output.Verbose = cfg.Output.Verbose || verbose
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
	}
}

// readForm decodes a YAML or JSON patient file into form fields.
func readForm(path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	form := make(map[string]any)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		if err := json.Unmarshal(data, &form); err != nil {
			return nil, fmt.Errorf("parse input: %w", err)
		}
		return form, nil
	}
	// YAML is a superset of JSON, so stdin may be either
	if err := yaml.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	return form, nil
}

func storeConsent(ctx context.Context, cfg *model.Config, a *model.Assessment) error {
	if !cfg.Consent.Enabled {
		return fmt.Errorf("%s", i18n.T(i18n.Parse(a.Language), "error_consent_disabled"))
	}
	store, err := consent.NewSQLiteStore(cfg.Consent.Path)
	if err != nil {
		return fmt.Errorf("open consent log: %w", err)
	}
	defer func() { _ = store.Close() }()

	rec := model.NewConsentRecord(a)
	if err := store.Save(ctx, &rec); err != nil {
		return fmt.Errorf("save consent: %w", err)
	}
	return nil
}
