package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/cardiorisk/internal/consent"
	"github.com/ppiankov/cardiorisk/internal/model"
	"github.com/ppiankov/cardiorisk/internal/server"
	"github.com/ppiankov/cardiorisk/internal/session"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard API server",
	Long: `Serve starts the dashboard HTTP API.

Each browser tab opens a session, submits assessments to it and reads
back the patient view, clinician view and chart data. Results can be
downloaded in every export format, and an anonymized copy can be stored
when the user consents.

Example:
  cardiorisk serve
  cardiorisk serve --addr :9090 --api http://risk-model:8000`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default from config)")
	serveCmd.Flags().Bool("no-consent", false, "disable the consent log")

	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if off, _ := cmd.Flags().GetBool("no-consent"); off {
		cfg.Consent.Enabled = false
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	serverDeps, closeDeps, err := newServerDeps(cfg, deps)
	if err != nil {
		return err
	}
	defer closeDeps()

	deps.logger.Info().
		Str("addr", cfg.Server.Addr).
		Str("api", cfg.API.BaseURL).
		Bool("cache", deps.cache != nil).
		Bool("consent", cfg.Consent.Enabled).
		Bool("llm", deps.reviewer != nil).
		Msg("starting dashboard server")

	return server.New(cfg, serverDeps, deps.logger).Run(ctx, cfg.Server.Addr)
}

// newServerDeps builds the session store and, when enabled, the consent log.
// The returned func closes what was opened.
func newServerDeps(cfg *model.Config, deps *runtimeDeps) (server.Deps, func(), error) {
	sessions, err := session.NewStore(cfg.Server.SessionCapacity)
	if err != nil {
		return server.Deps{}, nil, fmt.Errorf("create session store: %w", err)
	}

	sd := server.Deps{
		Assessor: deps.pipeline,
		Sessions: sessions,
		Upstream: deps.client,
	}
	if !cfg.Consent.Enabled {
		return sd, func() {}, nil
	}

	store, err := consent.NewSQLiteStore(cfg.Consent.Path)
	if err != nil {
		return server.Deps{}, nil, fmt.Errorf("open consent log: %w", err)
	}
	sd.Consent = store
	return sd, func() { _ = store.Close() }, nil
}
