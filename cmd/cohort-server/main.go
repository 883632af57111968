package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/sepsis/cohort/internal/config"
	"github.com/sepsis/cohort/internal/domain/cohort"
	"github.com/sepsis/cohort/internal/domain/events"
	"github.com/sepsis/cohort/internal/domain/sepsis"
	"github.com/sepsis/cohort/internal/platform/auth"
	"github.com/sepsis/cohort/internal/platform/db"
	"github.com/sepsis/cohort/internal/platform/middleware"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cohort-server",
		Short: "Sepsis onset labeling for trauma ICU cohorts",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return logger
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Select the cohort, assign sepsis labels, and store the run",
		RunE: func(cmd *cobra.Command, args []string) error {
			admissionsCSV, _ := cmd.Flags().GetString("admissions")
			culturesCSV, _ := cmd.Flags().GetString("cultures")
			antibioticsCSV, _ := cmd.Flags().GetString("antibiotics")
			sofaCSV, _ := cmd.Flags().GetString("sofa")
			output, _ := cmd.Flags().GetString("output")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			ctx := cmd.Context()

			offline := culturesCSV != "" || antibioticsCSV != "" || sofaCSV != ""
			if offline && (culturesCSV == "" || antibioticsCSV == "" || sofaCSV == "" || admissionsCSV == "") {
				return fmt.Errorf("offline runs need --admissions, --cultures, --antibiotics and --sofa together")
			}

			var (
				admissions []cohort.Admission
				engine     *sepsis.Engine
				store      sepsis.Repository
			)
			if offline {
				admissions, err = cohort.LoadAdmissionsCSV(admissionsCSV)
				if err != nil {
					return err
				}
				eventRepo := events.NewRepoCSV(culturesCSV, antibioticsCSV, sofaCSV)
				engine = sepsis.NewEngine(eventRepo, eventRepo, eventRepo, cfg.Workers, logger)
			} else {
				pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
				if err != nil {
					return err
				}
				defer pool.Close()

				cohortSvc := cohort.NewService(cohort.NewRepoPG(pool, cfg.DataSchema), logger)
				admissions, err = cohortSvc.SelectCohort(ctx, cohort.Criteria{VentDays: cfg.VentDays})
				if err != nil {
					return err
				}

				eventRepo := events.NewRepoPG(pool, cfg.DataSchema)
				engine = sepsis.NewEngine(eventRepo, eventRepo, eventRepo, cfg.Workers, logger)
				store = sepsis.NewRepoPG(pool)
			}

			report, err := engine.LabelCohort(ctx, admissions)
			if err != nil {
				return err
			}

			if store != nil && !dryRun {
				svc := sepsis.NewService(store, logger)
				run, err := svc.SaveReport(ctx, report)
				if err != nil {
					return err
				}
				fmt.Printf("Run %s saved: %d labels, %d infections, %d sepsis cases, %d excluded.\n",
					run.ID, run.Cohort, run.Infections, run.SepsisCases, run.Excluded)
			} else {
				fmt.Printf("Labeled %d admissions: %d infections, %d sepsis cases, %d excluded.\n",
					len(report.Labels), report.Infections(), report.SepsisCases(), len(report.Excluded))
			}

			if output != "" {
				if err := writeReportJSON(output, report); err != nil {
					return err
				}
				fmt.Printf("Report written to %s.\n", output)
			}
			return nil
		},
	}
	cmd.Flags().String("admissions", "", "Cohort admissions CSV for offline runs")
	cmd.Flags().String("cultures", "", "Blood culture CSV for offline runs")
	cmd.Flags().String("antibiotics", "", "Antibiotic prescriptions CSV for offline runs")
	cmd.Flags().String("sofa", "", "Hourly SOFA score CSV for offline runs")
	cmd.Flags().String("output", "", "Write the labeling report to this JSON file")
	cmd.Flags().Bool("dry-run", false, "Label the cohort without persisting a run")
	return cmd
}

func writeReportJSON(path string, report *sepsis.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the label API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func runServer() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	if cfg.IsDev() {
		e.Use(auth.DevAuthMiddleware())
	} else {
		e.Use(auth.JWTMiddleware(auth.JWTConfig{
			SigningKey: []byte(cfg.AuthSigningKey),
		}))
	}

	e.GET("/health", db.HealthHandler(pool))

	apiV1 := e.Group("/api/v1")
	labelSvc := sepsis.NewService(sepsis.NewRepoPG(pool), logger)
	sepsis.NewHandler(labelSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			fmt.Printf("Running migrations on schema: %s\n", schema)

			count, err := migrator.Up(ctx, schema)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	upCmd.Flags().String("schema", "sepsis_cohort", "Target schema for migrations")
	upCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, _ := cmd.Flags().GetString("schema")
			dir, _ := cmd.Flags().GetString("dir")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, dir)
			statuses, err := migrator.Status(ctx, schema)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("Migration status for schema: %s\n", schema)
			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			fmt.Println("---------- ---------------------------------------- ---------- --------------------")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	statusCmd.Flags().String("schema", "sepsis_cohort", "Target schema for migrations")
	statusCmd.Flags().String("dir", "./migrations", "Path to migrations directory")
	cmd.AddCommand(statusCmd)

	return cmd
}
