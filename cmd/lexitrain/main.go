package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lexitrain/internal/config"
	"lexitrain/internal/enrichment"
	"lexitrain/internal/importer"
	"lexitrain/internal/repository/sqlite"
	"lexitrain/internal/service"
)

// app wires the store, services and engine behind the CLI commands.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	store    *sqlite.Store
	engine   *service.Engine
	importer *importer.Importer
	tracker  *service.Tracker
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a := &app{logger: logger}

	root := &cobra.Command{
		Use:           "lexitrain",
		Short:         "Local vocabulary trainer with leveled multiple-choice quizzes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.store != nil {
				a.store.Close()
			}
		},
	}

	root.AddCommand(
		newQuizCmd(a),
		newImportCmd(a),
		newStatsCmd(a),
		newWordsCmd(a),
	)

	if err := root.Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

// setup loads configuration, opens the store and builds the engine.
func (a *app) setup() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg

	store := sqlite.New()
	if err := store.Open(cfg.DBPath); err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	a.store = store
	a.logger.Info("store opened", zap.String("path", cfg.DBPath))

	wordRepo := sqlite.NewWordRepo(store)
	progressRepo := sqlite.NewProgressRepo(store)
	sessionRepo := sqlite.NewSessionRepo(store)
	profileRepo := sqlite.NewProfileRepo(store)

	provider := enrichment.NewDictClient(cfg.Enrichment.APIURL, cfg.Enrichment.APIKey)
	coordinator := enrichment.NewCoordinator(
		provider,
		wordRepo,
		cfg.Enrichment.BatchSize,
		cfg.Enrichment.RatePerSec,
		a.logger,
	)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	selector := service.NewSelector(wordRepo, rng, a.logger)
	generator := service.NewGenerator(rng)
	tracker := service.NewTracker(progressRepo, sessionRepo, profileRepo, a.logger, nil)

	a.tracker = tracker
	a.engine = service.NewEngine(selector, generator, coordinator, tracker, a.logger)
	a.importer = importer.New(wordRepo, a.logger)

	if !provider.Configured() {
		a.logger.Info("no enrichment credential configured, quizzes fall back to unenriched data")
	}
	return nil
}
