package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Prokope45/Praestara/internal/api"
	"github.com/Prokope45/Praestara/internal/cli"
	"github.com/Prokope45/Praestara/internal/db"
	"github.com/Prokope45/Praestara/internal/generation"
	"github.com/Prokope45/Praestara/internal/reflection"
	"github.com/Prokope45/Praestara/internal/repository"
	"github.com/Prokope45/Praestara/internal/service"
	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env if present; real environment variables win.
	_ = godotenv.Load()

	// Determine DB path: env var or default ~/.praestara/praestara.db
	dbPath := os.Getenv("PRAESTARA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".praestara", "praestara.db")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	responseRepo := repository.NewSQLiteResponseRepo(database)

	// Wire the reply generator. Without PRAESTARA_LLM_ENDPOINT every call
	// falls through to the deterministic composer.
	genCfg := generation.LoadConfig()
	var observer generation.Observer = generation.NoopObserver{}
	if genCfg.LogCalls {
		observer = generation.NewLogObserver(os.Stderr)
	}
	engine := reflection.NewEngine(generation.NewClient(genCfg, observer))

	checkinSvc := service.NewCheckinService(responseRepo, engine)
	onboardingSvc := service.NewOnboardingService(responseRepo)

	owner := os.Getenv("PRAESTARA_OWNER")
	if owner == "" {
		owner = "local"
	}

	app := &cli.App{
		Checkins:   checkinSvc,
		Onboarding: onboardingSvc,
		Handler:    api.NewHandler(checkinSvc, onboardingSvc),
		Owner:      owner,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
