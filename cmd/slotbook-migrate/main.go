package main

import (
	"errors"
	"log/slog"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"

	"slotbook/internal/config"
	"slotbook/internal/store/postgres"
)

// Usage: slotbook-migrate [up | down | force <version> | version]
func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "slotbook-migrate"))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}

	m, err := postgres.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		log.Error("create migrator failed", slog.Any("err", err))
		os.Exit(1)
	}

	os.Exit(execute(log, m, os.Args[1:]))
}

// execute runs the command and closes m before returning the exit code.
func execute(log *slog.Logger, m migrator, args []string) int {
	defer func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			log.Warn("close migrator failed", slog.Any("err", err))
		}
	}()

	if err := run(m, args); err != nil {
		log.Error("migration failed", slog.Any("err", err))
		return 1
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		log.Warn("version read failed", slog.Any("err", err))
		return 0
	}
	log.Info("migrations complete", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return 0
}

type migrator interface {
	Up() error
	Down() error
	Force(version int) error
	Version() (uint, bool, error)
	Close() (error, error)
}

func run(m migrator, args []string) error {
	cmd := "up"
	if len(args) > 0 {
		cmd = args[0]
	}

	var err error
	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version")
		}
		version, convErr := strconv.Atoi(args[1])
		if convErr != nil {
			return errors.New("invalid version: " + args[1])
		}
		return m.Force(version)
	case "version":
		return nil
	default:
		return errors.New("unknown command: " + cmd)
	}
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	return err
}
