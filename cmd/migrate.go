package cmd

import (
	"log"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/qrave1/zoomer/internal/application/config"
	"github.com/qrave1/zoomer/internal/application/constant"
	"github.com/qrave1/zoomer/internal/infra/adapters/postgres/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [command] [args...]",
	Short: "Run database migrations (up, down, status, ...)",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.New()
		if err != nil {
			log.Fatalf("could not load config: %v", err)
		}

		goose.SetBaseFS(migrations.MigrationsFS)

		db, err := goose.OpenDBWithDriver("pgx", cfg.Postgres.DSN())
		if err != nil {
			log.Fatalf("goose: failed to open DB: %v", err)
		}

		defer func() {
			if err := db.Close(); err != nil {
				log.Fatalf("goose: failed to close DB: %v", err)
			}
		}()

		err = goose.RunContext(
			cmd.Context(),
			args[0],
			db,
			".",
			args[1:]...,
		)
		if err != nil {
			log.Fatalf("goose: %s failed: %v", args[0], err)
		}

		slog.Info("goose command finished", slog.String(constant.Migrations, args[0]))
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
