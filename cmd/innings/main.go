// Command innings prints half-inning start and end times for MLB games and
// writes them to a CSV (one game) or XLSX workbook (several games).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"mlb-inning-times/internal/api"
	"mlb-inning-times/internal/cache"
	"mlb-inning-times/internal/config"
	"mlb-inning-times/internal/constants"
	"mlb-inning-times/internal/database"
	"mlb-inning-times/internal/db"
	"mlb-inning-times/internal/display"
	"mlb-inning-times/internal/domain"
	"mlb-inning-times/internal/export"
	"mlb-inning-times/internal/innings"
	"mlb-inning-times/internal/logger"
	"mlb-inning-times/internal/metrics"
	"mlb-inning-times/internal/repository"
	"mlb-inning-times/internal/service"

	"github.com/mattn/go-isatty"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

type streams struct {
	stdin      io.Reader
	stdinIsTTY bool
	stdout     io.Writer
	stderr     io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := streams{
		stdin:      os.Stdin,
		stdinIsTTY: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
	os.Exit(run(ctx, os.Args[1:], s))
}

func run(ctx context.Context, args []string, s streams) int {
	log := logger.NewConsole(s.stderr)

	cfg, err := config.Load(log)
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return exitError
	}
	if _, err := logger.ApplyLevel(cfg.LogLevel); err != nil {
		log.Error().Err(err).Msg("invalid log level")
		return exitError
	}

	fs := flag.NewFlagSet("innings", flag.ContinueOnError)
	fs.SetOutput(s.stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "usage: innings [-file ids.txt] [-out dir] [-refresh] [-db path] [gamePk ...]")
		fs.PrintDefaults()
	}
	idFile := fs.String("file", "", "file with one GamePk per line")
	outDir := fs.String("out", ".", "directory the export is written to")
	refresh := fs.Bool("refresh", false, "ignore cached and stored results")
	dbPath := fs.String("db", cfg.DBPath, "sqlite database for fetched games; empty disables it")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	var sources []io.Reader
	switch {
	case fs.NArg() > 0:
		sources = append(sources, strings.NewReader(strings.Join(fs.Args(), "\n")))
	case s.stdin != nil && !s.stdinIsTTY:
		sources = append(sources, s.stdin)
	}
	if *idFile != "" {
		f, err := os.Open(*idFile)
		if err != nil {
			log.Error().Err(err).Str("file", *idFile).Msg("failed to open identifier file")
			return exitError
		}
		defer f.Close()
		sources = append(sources, f)
	}

	gamePks, err := innings.ReadIdentifiers(sources...)
	if err != nil {
		log.Error().Err(err).Msg("failed to read identifiers")
		return exitError
	}
	if len(gamePks) == 0 {
		fmt.Fprintln(s.stderr, innings.ErrNoIdentifiers)
		fs.Usage()
		return exitUsage
	}

	var store service.GameStore
	if *dbPath != "" {
		sqlDB, err := database.Open(*dbPath, log)
		if err != nil {
			log.Error().Err(err).Str("db_path", *dbPath).Msg("failed to open database")
			return exitError
		}
		defer sqlDB.Close()
		store = repository.NewGameRepository(sqlDB, db.New(sqlDB), log)
	}

	svc := service.NewInningService(
		api.NewStatsAPIClient(cfg),
		store,
		cache.New(cfg.CacheTTL),
		metrics.NewManager(),
		cfg,
		log,
	)

	batch, err := svc.RunBatch(ctx, gamePks, *refresh)
	if err != nil {
		log.Error().Err(err).Msg("batch failed")
		return exitError
	}

	if err := display.RenderFailures(s.stderr, batch.Failures); err != nil {
		return exitError
	}

	if !batch.HasData() {
		fmt.Fprintln(s.stdout, constants.NoDataMessage)
		if len(batch.Failures) > 0 {
			return exitError
		}
		return exitOK
	}

	if err := display.Render(s.stdout, batch.Results); err != nil {
		log.Error().Err(err).Msg("failed to render results")
		return exitError
	}

	path, err := writeArtifact(*outDir, batch)
	if err != nil {
		log.Error().Err(err).Msg("failed to write export")
		return exitError
	}
	fmt.Fprintf(s.stdout, "\nwrote %s\n", path)

	return exitOK
}

func writeArtifact(dir string, batch *domain.BatchResult) (string, error) {
	artifact, err := export.Build(batch.Results)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, artifact.Filename)
	if err := os.WriteFile(path, artifact.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
