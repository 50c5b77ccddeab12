// Package main is the schema migration runner for the mockres database.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	if err := run(os.Args[1], os.Args[2:]); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(command string, args []string) error {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return errors.New("DATABASE_URL environment variable is required")
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "./migrations"
	}

	m, err := migrate.New("file://"+migrationsPath, dbURL)
	if err != nil {
		return fmt.Errorf("open migration source: %w", err)
	}
	defer m.Close()

	m.Log = &migrateLogger{}

	switch command {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
		slog.Info("schema is up to date")
		return nil

	case "down":
		steps, err := stepsArg(args)
		if err != nil {
			return err
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
		slog.Info("rolled back", "steps", steps)
		return nil

	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			if errors.Is(err, migrate.ErrNilVersion) {
				fmt.Println("no migrations applied")
				return nil
			}
			return fmt.Errorf("version: %w", err)
		}
		fmt.Printf("version %d (dirty: %v)\n", v, dirty)
		return nil

	case "force":
		if len(args) < 1 {
			return errors.New("force: version argument required")
		}
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("force: invalid version %q", args[0])
		}
		if err := m.Force(v); err != nil {
			return fmt.Errorf("force: %w", err)
		}
		slog.Info("version forced", "version", v)
		return nil

	case "drop":
		if !confirmDrop() {
			fmt.Println("aborted")
			return nil
		}
		if err := m.Drop(); err != nil {
			return fmt.Errorf("drop: %w", err)
		}
		slog.Info("schema dropped")
		return nil

	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func stepsArg(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("down: invalid steps argument %q", args[0])
	}
	return n, nil
}

// confirmDrop requires the operator to type the full confirmation phrase;
// drop destroys the users and resources tables along with the seed data.
func confirmDrop() bool {
	fmt.Fprint(os.Stderr, "This drops every table, including seeded users and resources.\nType 'drop everything' to continue: ")
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "drop everything"
}

type migrateLogger struct{}

func (l *migrateLogger) Printf(format string, v ...any) {
	slog.Info(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
func (l *migrateLogger) Verbose() bool { return false }

func usage() {
	fmt.Fprintln(os.Stderr, strings.TrimSpace(`
Usage: migrate <command> [args]

  up         apply all pending migrations
  down [N]   roll back N migrations (default 1)
  version    print the current schema version
  force <V>  overwrite the recorded version (clears a dirty state)
  drop       destroy all tables (development only)

Reads DATABASE_URL (required) and MIGRATIONS_PATH (default ./migrations).
`))
}
