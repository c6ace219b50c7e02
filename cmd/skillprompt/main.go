package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/skillprompt/internal/cli"
	"github.com/alexanderramin/skillprompt/internal/compose"
	"github.com/alexanderramin/skillprompt/internal/config"
	"github.com/alexanderramin/skillprompt/internal/consistency"
	"github.com/alexanderramin/skillprompt/internal/db"
	"github.com/alexanderramin/skillprompt/internal/intent"
	"github.com/alexanderramin/skillprompt/internal/mcpserver"
	"github.com/alexanderramin/skillprompt/internal/prompts"
	"github.com/alexanderramin/skillprompt/internal/repository"
	"github.com/alexanderramin/skillprompt/internal/retrieval"
	"github.com/alexanderramin/skillprompt/internal/rules"
	"github.com/alexanderramin/skillprompt/internal/service"
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
	// A missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()
	cfg := config.Load()

	// stdout carries MCP frames under "serve", so all logging goes to stderr.
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	tables := rules.Default()
	if cfg.RulesFile != "" {
		loaded, err := rules.LoadFile(cfg.RulesFile)
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
		tables = loaded
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr, cfg.LogLevel)
	}

	// Wire repositories and pipeline components
	elementRepo := repository.NewSQLiteElementRepo(database)
	retriever := retrieval.NewRetriever(repository.NewSQLiteCatalog(database), tables)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	pipeline := service.NewPipelineService(
		intent.NewExtractor(tables),
		retriever,
		consistency.NewChecker(tables),
		compose.NewComposer(tables, compose.SectionStrategy{}),
		observer,
	)
	stats := service.NewStatsService(elementRepo, cfg.StatsTTL, observer)

	app := &cli.App{
		Pipeline:      pipeline,
		Selection:     service.NewSelectionService(retriever, observer),
		Stats:         stats,
		Catalog:       service.NewCatalogService(elementRepo, uow, tables, stats, observer),
		KeywordsLimit: cfg.ComposeKeywordsMax,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Serve = func(ctx context.Context) error {
		builder, err := prompts.NewBuilder()
		if err != nil {
			return err
		}
		s, err := mcpserver.New(mcpserver.Deps{
			Pipeline:      pipeline,
			Stats:         stats,
			Prompts:       builder,
			KeywordsLimit: cfg.ComposeKeywordsMax,
		})
		if err != nil {
			return err
		}
		logger.Info("mcp server starting", "db", cfg.DBPath)
		return mcpserver.ServeStdio(ctx, s, os.Stdin, os.Stdout, slog.NewLogLogger(handler, slog.LevelError))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}
