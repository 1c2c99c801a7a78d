package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/barterhub/barter-api/internal/database"
	"github.com/barterhub/barter-api/internal/models"
	itemsvc "github.com/barterhub/barter-api/internal/services/items"
	"github.com/barterhub/barter-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Barter API.

The schema is managed with auto-migration plus two derived indexes: a
composite index on listing coordinates for radius search, and an FTS5
table for keyword search (when the SQLite build supports it).

Available subcommands:
  up      - Migrate the schema and build indexes
  status  - Show which tables and indexes exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Migrate the schema and build indexes",
	Long: `Bring the database schema up to date.

Creates or alters the user, item, image, conversation and message
tables, then (re)builds the geospatial and text search indexes.

The text index needs a binary compiled with the sqlite_fts5 build tag
(go build -tags sqlite_fts5). Without it the index step is skipped and
keyword search uses substring matching.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows which tables exist
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display which tables and search indexes currently exist in the
configured database. No changes are made.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateUpCmd.Flags().Bool("skip-indexes", false, "migrate tables only, skip index builds")
}

func openMigrationDB() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	skipIndexes, _ := cmd.Flags().GetBool("skip-indexes")

	db, err := openMigrationDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Item{},
		&models.ItemImage{},
		&models.Conversation{},
		&models.Message{},
	); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	fmt.Println("Schema migrated")

	if skipIndexes {
		return nil
	}

	ctx := context.Background()
	repo := itemsvc.NewRepository(db.DB)
	if err := repo.EnsureGeoIndex(ctx); err != nil {
		return fmt.Errorf("geo index build failed: %w", err)
	}
	fmt.Println("Geo index ready")

	if err := repo.EnsureSearchIndex(ctx); err != nil {
		// FTS5 is optional; keyword search falls back to LIKE without it.
		fmt.Printf("Search index unavailable: %v\n", err)
		return nil
	}
	fmt.Println("Search index ready")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openMigrationDB()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println("Database Migration Status")
	fmt.Println(repeatString("=", 50))

	migrator := db.DB.Migrator()
	tables := []struct {
		name  string
		model interface{}
	}{
		{"users", &models.User{}},
		{"items", &models.Item{}},
		{"item_images", &models.ItemImage{}},
		{"conversations", &models.Conversation{}},
		{"messages", &models.Message{}},
	}
	for _, table := range tables {
		state := "missing"
		if migrator.HasTable(table.model) {
			state = "present"
		}
		fmt.Printf("  %-20s %s\n", table.name, state)
	}

	geoState := "missing"
	if migrator.HasIndex(&models.Item{}, "idx_items_position") {
		geoState = "present"
	}
	fmt.Printf("  %-20s %s\n", "geo index", geoState)

	searchState := "missing"
	if migrator.HasTable("items_fts") {
		searchState = "present"
	}
	fmt.Printf("  %-20s %s\n", "search index", searchState)

	return nil
}
