// cmd/catalogctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/nimbushr/catalog/internal/config"
	"github.com/nimbushr/catalog/internal/model"
	"github.com/nimbushr/catalog/internal/repository"
	"github.com/nimbushr/catalog/internal/service"
)

const version = "0.3.0"

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string (defaults to DB_* environment)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "catalogctl",
	Short: "catalogctl manages the system configuration catalogs",
	Long:  `catalogctl seeds and inspects the reference-data catalogs (departments, roles, positions, skills, benefits) backing the HR platform.`,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install default catalogs for any type still missing",
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustCatalogService()

		if err := svc.EnsureDefaults(context.Background(), nil); err != nil {
			log.Fatalf("Failed to seed defaults: %v", err)
		}

		fmt.Println("Default catalogs are in place")
	},
}

var listCmd = &cobra.Command{
	Use:   "list [type]",
	Short: "Print the active items of a catalog",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc := mustCatalogService()

		view, err := svc.GetByType(context.Background(), args[0], nil)
		if err != nil {
			log.Fatalf("Failed to list %s: %v", args[0], err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ORDER\tNAME\tCOLOR\tID")
		for _, item := range view.Items {
			if verbose {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", item.Order, item.Name, item.Color, item.ID, item.Description)
				continue
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", item.Order, item.Name, item.Color, item.ID)
		}
		w.Flush()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the catalogctl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("catalogctl version %s\n", version)
	},
}

func mustCatalogService() *service.CatalogService {
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&model.ConfigCatalog{}, &model.CatalogItem{}, &model.CatalogAuditLog{}); err != nil {
		log.Fatalf("Failed to migrate catalog tables: %v", err)
	}

	return service.NewCatalogService(
		repository.NewCatalogRepository(db),
		repository.NewUserDirectory(db),
		repository.NewCatalogAuditLogRepository(db),
		nil,
		nil,
	)
}

func openDatabase() (*gorm.DB, error) {
	dsn := dbConnString
	if dsn == "" {
		cfg := config.Load()
		dsn = fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.SSLMode,
			cfg.Database.SearchPath,
		)
	}

	logLevel := gormlogger.Silent
	if verbose {
		logLevel = gormlogger.Info
	}

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
