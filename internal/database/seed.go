package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"proplib/internal/models"
)

// Seed populates an empty components table with the generated local
// catalog so a fresh development database starts with browsable content.
// It is a no-op when the table already has rows.
func Seed(db *sql.DB, records []models.Component) error {
	// Check if any components exist already.
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM components").Scan(&count); err != nil {
		return fmt.Errorf("seed check components: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO components
			(id, name, description, category, tags, code, dependencies,
			 integration, smart_prompt, preview_component_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`)
	if err != nil {
		return fmt.Errorf("seed prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		tags, err := json.Marshal(rec.Tags)
		if err != nil {
			return fmt.Errorf("seed marshal tags for %s: %w", rec.ID, err)
		}
		deps, err := json.Marshal(rec.Dependencies)
		if err != nil {
			return fmt.Errorf("seed marshal dependencies for %s: %w", rec.ID, err)
		}

		if _, err := stmt.Exec(
			rec.ID, rec.Name, rec.Description, rec.Category, tags,
			rec.Code, deps, rec.Integration, rec.SmartPrompt,
			rec.PreviewComponentPath,
		); err != nil {
			return fmt.Errorf("seed insert %s: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with generated catalog", "components", len(records))
	return nil
}
