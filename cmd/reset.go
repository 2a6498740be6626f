package cmd

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/gradinita/leave-management/internal/balance"
	"github.com/gradinita/leave-management/internal/booking/postgres"
	closedperiodpg "github.com/gradinita/leave-management/internal/closedperiod/postgres"
	"github.com/gradinita/leave-management/internal/holiday"
	userpg "github.com/gradinita/leave-management/internal/user/postgres"
	"github.com/gradinita/leave-management/pkg/logger"
)

// resetYearCmd runs the yearly carryover roll from the command line, for
// operators who prefer cron over the admin endpoint.
var resetYearCmd = &cobra.Command{
	Use:   "reset-year",
	Short: "Roll unused vacation days into the new year's carryover",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)
		lg := logger.L()

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		gdb, err := initGorm(db)
		if err != nil {
			log.Fatalf("failed to init orm: %v", err)
		}

		client := holiday.NewClient(holiday.ClientConfig{
			APIURL:       cfg.Holidays.APIURL,
			FetchTimeout: cfg.Holidays.FetchTimeout,
		}, lg)
		resolver := holiday.NewResolver(client, holiday.NewMemoryCache(), lg)

		engine := balance.NewEngine(
			userpg.NewUserRepository(gdb),
			postgres.NewBookingRepository(gdb),
			closedperiodpg.NewClosedPeriodRepository(gdb),
			resolver,
			lg,
		)

		if err := engine.ResetYearlyVacationDays(context.Background()); err != nil {
			log.Fatalf("yearly reset failed: %v", err)
		}

		lg.Info("yearly reset finished")
	},
}
