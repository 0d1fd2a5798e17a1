package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"blog-service/internal/config"
	"blog-service/internal/logger"
	"blog-service/internal/repository/postgres"
)

func main() {
	app := &cli.App{
		Name:  "migrate",
		Usage: "apply or roll back blog database migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "./config",
				Usage: "directory containing config.yaml",
			},
			&cli.StringFlag{
				Name:  "path",
				Usage: "migrations directory, overrides database.migrations_path",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *postgres.Migrator) error {
						return m.Up()
					})
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "steps",
						Value: 1,
						Usage: "number of migrations to roll back, 0 rolls back all",
					},
				},
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *postgres.Migrator) error {
						return m.Down(c.Int("steps"))
					})
				},
			},
			{
				Name:  "version",
				Usage: "print the current migration version",
				Action: func(c *cli.Context) error {
					return withMigrator(c, func(m *postgres.Migrator) error {
						version, dirty, err := m.Version()
						if err != nil {
							return err
						}
						fmt.Fprintf(c.App.Writer, "version %d (dirty: %t)\n", version, dirty)
						return nil
					})
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withMigrator(c *cli.Context, fn func(m *postgres.Migrator) error) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if path := c.String("path"); path != "" {
		cfg.Database.MigrationsPath = path
	}

	log := logger.New(cfg.Env)
	m, err := postgres.NewMigrator(cfg.Database, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			log.Warn("Failed to close migrator", slog.String("error", err.Error()))
		}
	}()

	return fn(m)
}
