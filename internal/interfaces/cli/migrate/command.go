package migrate

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"crowdfund/internal/infrastructure/config"
	"crowdfund/internal/infrastructure/database"
	"crowdfund/internal/shared/logger"
)

var (
	env   string
	dir   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including applying, rolling back and checking status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", "./internal/infrastructure/persistence/migrations", "Migrations directory")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to roll back")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func initEnv() (logger.Interface, string, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, "", fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, "", fmt.Errorf("failed to initialize database: %w", err)
	}

	migrationsDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, "", fmt.Errorf("failed to resolve migrations directory: %w", err)
	}

	return log, migrationsDir, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	log, migrationsDir, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.Migrate(migrationsDir); err != nil {
		return err
	}

	log.Info("migrations applied")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	log, migrationsDir, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	if err := database.MigrateDown(migrationsDir, steps); err != nil {
		return err
	}

	log.Infow("migrations rolled back", "steps", steps)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	log, migrationsDir, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	version, dirty, err := database.MigrationVersion(migrationsDir)
	if err != nil {
		return err
	}

	log.Infow("migration status", "version", version, "dirty", dirty)
	return nil
}
