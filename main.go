package main

import (
	"log"
	"net/http"
	"os"

	"github.com/branch-locator/app/config"
	"github.com/branch-locator/app/services"
	"github.com/branch-locator/helpers/utils"
	"github.com/branch-locator/internal/i18n"
	"github.com/branch-locator/internal/loader"
	"github.com/branch-locator/internal/matcher"
	"github.com/branch-locator/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load(os.Getenv("APP_CONFIG"))
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	// 2. Logger (file only, the terminal belongs to the UI)
	logger := initLogger(cfg)
	defer logger.Sync()

	sessionID := utils.GenerateUUID()
	logger = logger.With(zap.String("session_id", sessionID))
	logger.Info("Starting branch locator",
		zap.String("lang", cfg.App.Lang),
		zap.String("base_url", cfg.Data.BaseURL),
		zap.String("file", cfg.Data.File))

	// 3. Components
	catalog, err := i18n.LoadCatalog()
	if err != nil {
		logger.Fatal("Failed to load messages", zap.Error(err))
	}
	msgs := catalog.Lookup(cfg.App.Lang)

	opts, err := cfg.LoaderOptions()
	if err != nil {
		logger.Fatal("Invalid data options", zap.Error(err))
	}
	source := cfg.Source(&http.Client{Timeout: cfg.Data.FetchTimeout})
	directoryService := services.NewDirectoryService(loader.New(source, opts, logger), opts, msgs.DataError, logger)

	optionMatcher, err := matcher.New(cfg.Search.CacheSize, cfg.Search.MinScore, logger)
	if err != nil {
		logger.Fatal("Failed to create matcher", zap.Error(err))
	}

	// 4. Run the UI; its first command performs the single load
	model := tui.New(tui.Config{
		Source:      directoryService,
		Matcher:     optionMatcher,
		Messages:    msgs,
		EmbedKey:    cfg.Maps.EmbedAPIKey,
		NearbyLimit: cfg.Nearby.Limit,
		Logger:      logger,
	})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logger.Error("UI stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Branch locator exited")
}

// initLogger builds a structured logger writing to the configured file
func initLogger(cfg *config.Config) *zap.Logger {
	var zc zap.Config
	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err == nil {
		zc.Level = level
	}
	zc.OutputPaths = []string{cfg.Log.File}
	zc.ErrorOutputPaths = []string{cfg.Log.File}

	logger, err := zc.Build()
	if err != nil {
		log.Fatal("Cannot initialize logger:", err)
	}
	return logger
}
