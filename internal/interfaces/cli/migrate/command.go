package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/infrastructure/database"
	"helpdesk/internal/infrastructure/migration"
	"helpdesk/internal/shared/logger"
)

var (
	env         string
	steps       int
	scriptsPath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations: apply pending migrations, roll back, and inspect the current version.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newAutoCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}

	cmd.Flags().StringVar(&scriptsPath, "scripts", "", "Run migration files from this directory instead of the embedded scripts")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current migration version",
		RunE:  runStatus,
	}
}

func newAutoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "auto",
		Short: "Sync the schema with gorm auto-migration (development only)",
		RunE:  runAuto,
	}
}

func setup() error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	return nil
}

func runUp(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	if scriptsPath != "" {
		strategy := migration.NewGolangMigrateStrategy(scriptsPath)
		logger.Info("running migrations", "strategy", strategy.GetName())

		if err := strategy.Migrate(database.Get()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}

		logger.Info("migrations applied")
		return nil
	}

	manager := migration.NewManager(env)
	logger.Info("running migrations", "strategy", manager.StrategyName())

	if err := manager.Migrate(database.Get()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Info("migrations applied")
	return nil
}

func runAuto(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewAutoMigrateStrategy()
	if err := strategy.Migrate(database.Get(), migration.Models()...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	logger.Info("auto-migration completed")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy()
	gooseStrategy, ok := strategy.(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("rollback requires the goose strategy")
	}

	logger.Info("rolling back migrations", "steps", steps)

	if err := gooseStrategy.Down(database.Get(), steps); err != nil {
		return fmt.Errorf("rollback failed: %w", err)
	}

	logger.Info("rollback completed")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	if err := setup(); err != nil {
		return err
	}
	defer database.Close()

	strategy := migration.NewGooseStrategy()
	gooseStrategy, ok := strategy.(*migration.GooseStrategy)
	if !ok {
		return fmt.Errorf("status requires the goose strategy")
	}

	version, err := gooseStrategy.GetVersion(database.Get())
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	fmt.Printf("current migration version: %d\n", version)
	return nil
}
