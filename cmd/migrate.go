package cmd

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"warehouse.GO/config"
	"warehouse.GO/migrations"
	"warehouse.GO/model/entity"
)

var migrateDown bool

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Apply database migrations (MySQL) or AutoMigrate (sqlite)",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := config.NewDB()
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}

		// sqlite is the dev/test driver; gorm owns its schema.
		if config.DriverName() == "sqlite" {
			if migrateDown {
				return errors.New("db:migrate --down is MySQL only")
			}
			if err := db.AutoMigrate(entity.All()...); err != nil {
				return fmt.Errorf("automigrate: %w", err)
			}
			fmt.Println("sqlite schema up to date")
			return nil
		}

		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		driver, err := migratemysql.WithInstance(sqlDB, &migratemysql.Config{})
		if err != nil {
			return fmt.Errorf("migrate driver: %w", err)
		}
		src, err := iofs.New(migrations.FS, ".")
		if err != nil {
			return fmt.Errorf("migrate source: %w", err)
		}
		m, err := migrate.NewWithInstance("iofs", src, "mysql", driver)
		if err != nil {
			return fmt.Errorf("migrate init: %w", err)
		}

		if migrateDown {
			err = m.Down()
		} else {
			err = m.Up()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migrate: %w", err)
		}
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("No schema changes")
		} else {
			fmt.Println("Migrations applied")
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateDown, "down", false, "Roll all migrations back")
	rootCmd.AddCommand(migrateCmd)
}
