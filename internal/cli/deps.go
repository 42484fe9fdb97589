package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ppiankov/cardiorisk/internal/cache"
	"github.com/ppiankov/cardiorisk/internal/export"
	"github.com/ppiankov/cardiorisk/internal/i18n"
	"github.com/ppiankov/cardiorisk/internal/llm"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/pipeline"
	"github.com/ppiankov/cardiorisk/internal/report"
)

// runtimeDeps are the collaborators shared by assess, batch and serve.
type runtimeDeps struct {
	cfg      *model.Config
	logger   zerolog.Logger
	client   *pipeline.Client
	pipeline *pipeline.Pipeline
	cache    *cache.LayeredCache // nil when caching is disabled
	reviewer *llm.Summarizer     // nil when no provider is configured
}

// buildDeps wires the prediction client, cache tiers and second-opinion
// provider from cfg.
func buildDeps(ctx context.Context, cfg *model.Config) (*runtimeDeps, error) {
	d := &runtimeDeps{cfg: cfg, logger: newLogger(cfg)}
	d.client = pipeline.NewClient(cfg.API, d.logger)

	opts := []pipeline.Option{pipeline.WithPredictor(d.client)}

	c, err := cache.FromConfig(ctx, cfg.Cache)
	if err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}
	if c != nil {
		d.cache = c
		opts = append(opts, pipeline.WithCache(c, cfg.Cache.MemoryTTL))
	}

	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM, cfg.API))
		if err != nil {
			d.Close()
			return nil, fmt.Errorf("init llm: %w", err)
		}
		d.reviewer = s
		opts = append(opts, pipeline.WithReviewer(s))
	}

	d.pipeline = pipeline.NewPipeline(cfg, d.logger, opts...)
	return d, nil
}

// Close releases cache connections.
func (d *runtimeDeps) Close() {
	if d.cache == nil {
		return
	}
	if err := d.cache.Close(); err != nil {
		d.logger.Warn().Err(err).Msg("close cache")
	}
}

func exportOptions(cfg *model.Config, lang i18n.Language) export.Options {
	return export.Options{
		Language: lang,
		Footer:   cfg.Output.IncludeFooter,
		PDF: report.PDFOptions{
			ChromePath: cfg.Print.ChromePath,
			Timeout:    cfg.Print.Timeout,
		},
	}
}

// parseFormats resolves format names, rejecting unknown ones.
func parseFormats(names []string) ([]export.Format, error) {
	formats := make([]export.Format, 0, len(names))
	seen := make(map[export.Format]bool)
	for _, name := range names {
		f, err := export.ParseFormat(name)
		if err != nil {
			return nil, err
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	return formats, nil
}

func banner(title string) {
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "  %s\n", title)
	fmt.Fprintf(os.Stderr, "═══════════════════════════════════════════════════════════\n")
	fmt.Fprintf(os.Stderr, "\n")
}
