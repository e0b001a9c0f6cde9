// Package main is the entry point for the Hunter Codex database migration tool.
// This tool manages PostgreSQL schema migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/prn-tf/hunter-codex/internal/config"
	"github.com/prn-tf/hunter-codex/internal/repository/postgres"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	switch command {
	case "version":
		fmt.Printf("Hunter Codex Migration Tool\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)

	case "up":
		runWithDB(*configPath, func(ctx context.Context, db *postgres.DB) error {
			return db.Migrate(ctx)
		})

	case "status":
		runWithDB(*configPath, func(ctx context.Context, db *postgres.DB) error {
			version, err := db.MigrationVersion(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("current migration version: %d\n", version)
			return nil
		})

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runWithDB connects to PostgreSQL, runs fn, and closes the connection.
func runWithDB(configPath string, fn func(ctx context.Context, db *postgres.DB) error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := postgres.NewDB(ctx, cfg.Database, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := fn(ctx, db); err != nil {
		fmt.Fprintf(os.Stderr, "migration command failed: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Hunter Codex Migration Tool

Usage:
  codex-migrate [-config path] <command>

Commands:
  up          Apply all pending migrations
  status      Show current migration version
  version     Print version information
  help        Show this help message

Configuration is read the same way as the server: an optional YAML file
plus CODEX_-prefixed environment variables (e.g. CODEX_DATABASE_HOST).

Examples:
  codex-migrate up
  codex-migrate -config configs/config.yaml status`)
}
