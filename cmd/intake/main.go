package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/intake/internal/catalog"
	"github.com/alexanderramin/intake/internal/cli"
	"github.com/alexanderramin/intake/internal/db"
	"github.com/alexanderramin/intake/internal/intelligence"
	"github.com/alexanderramin/intake/internal/llm"
	"github.com/alexanderramin/intake/internal/repository"
	"github.com/alexanderramin/intake/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; a missing file is fine.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.intake/intake.db
	dbPath := os.Getenv("INTAKE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".intake", "intake.db")
	}

	// Interview plan: a YAML catalog path overrides the built-in plan.
	cat := catalog.Default()
	if path := os.Getenv("INTAKE_CATALOG"); path != "" {
		loaded, err := catalog.Load(path)
		if err != nil {
			return fmt.Errorf("loading catalog %s: %w", path, err)
		}
		cat = loaded
	}

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	turnRepo := repository.NewSQLiteTurnRepo(database)

	// Wire the language model adapters. When the model is disabled or
	// unreachable the deterministic paths carry every turn.
	llmCfg := llm.LoadConfig()
	var extractor intelligence.Extractor
	var followups intelligence.FollowUpGenerator
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		extractor = intelligence.NewExtractionService(llmClient)
		followups = intelligence.NewFollowUpService(llmClient)
	} else {
		extractor = intelligence.NewDisabledExtractor()
		followups = intelligence.NewTemplateFollowUpService()
	}

	app := &cli.App{
		Qualify: service.NewQualificationService(cat, sessionRepo, turnRepo, extractor, followups),
		Catalog: cat,
	}

	// Detect interactive terminal for the wizard and chat entrypoints.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
