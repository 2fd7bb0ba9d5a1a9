// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the PostgreSQL data access layer. Stores mirror
// the query surface of the local catalog so handlers can fall back between
// the two without reshaping results.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"proplib/internal/models"
)

// ComponentStore handles all component-related database operations.
type ComponentStore struct {
	db *sql.DB
}

// NewComponentStore creates a new ComponentStore with the given database connection.
func NewComponentStore(db *sql.DB) *ComponentStore {
	return &ComponentStore{db: db}
}

const componentColumns = `id, name, description, category, tags, code, dependencies,
	integration, smart_prompt, preview_component_path, view_count, copy_count,
	created_at, updated_at`

// scanComponent scans a row into a Component, decoding the jsonb columns.
func scanComponent(scanner interface{ Scan(...any) error }) (*models.Component, error) {
	var c models.Component
	var tags, deps []byte
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Description, &c.Category, &tags, &c.Code, &deps,
		&c.Integration, &c.SmartPrompt, &c.PreviewComponentPath,
		&c.ViewCount, &c.CopyCount, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(tags, &c.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for %s: %w", c.ID, err)
	}
	if err := json.Unmarshal(deps, &c.Dependencies); err != nil {
		return nil, fmt.Errorf("decode dependencies for %s: %w", c.ID, err)
	}
	return &c, nil
}

// ListParams filters and windows a component listing. Semantics match the
// local catalog query engine: exact category, AND-tag containment,
// full-text search, limit/offset window.
type ListParams struct {
	Category string
	Tags     []string
	Search   string
	Limit    int
	Offset   int
}

// List returns one page of matching components ordered by most recently
// updated, plus the total match count before the window was applied.
func (s *ComponentStore) List(p ListParams) ([]models.Component, int, error) {
	var conditions []string
	var args []any

	if p.Category != "" && p.Category != "all" {
		args = append(args, p.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}

	if len(p.Tags) > 0 {
		tagsJSON, err := json.Marshal(p.Tags)
		if err != nil {
			return nil, 0, fmt.Errorf("encode tag filter: %w", err)
		}
		args = append(args, tagsJSON)
		conditions = append(conditions, fmt.Sprintf("tags @> $%d::jsonb", len(args)))
	}

	if search := strings.TrimSpace(p.Search); search != "" {
		args = append(args, search)
		conditions = append(conditions, fmt.Sprintf("search_vector @@ websearch_to_tsquery('english', $%d)", len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	// Total matches before pagination.
	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM components"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count components: %w", err)
	}

	args = append(args, p.Limit, p.Offset)
	query := fmt.Sprintf(
		"SELECT %s FROM components%s ORDER BY updated_at DESC LIMIT $%d OFFSET $%d",
		componentColumns, where, len(args)-1, len(args),
	)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list components: %w", err)
	}
	defer rows.Close()

	items := make([]models.Component, 0, p.Limit)
	for rows.Next() {
		c, err := scanComponent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan component: %w", err)
		}
		items = append(items, *c)
	}
	return items, total, rows.Err()
}

// FindByID retrieves a component by ID. Returns nil if not found.
func (s *ComponentStore) FindByID(id string) (*models.Component, error) {
	row := s.db.QueryRow("SELECT "+componentColumns+" FROM components WHERE id = $1", id)
	c, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find component by id: %w", err)
	}
	return c, nil
}

// Create inserts a new component and returns the stored row.
func (s *ComponentStore) Create(c *models.Component) (*models.Component, error) {
	tags, err := json.Marshal(c.Tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	deps, err := json.Marshal(c.Dependencies)
	if err != nil {
		return nil, fmt.Errorf("encode dependencies: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO components
			(id, name, description, category, tags, code, dependencies,
			 integration, smart_prompt, preview_component_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+componentColumns,
		c.ID, c.Name, c.Description, c.Category, tags, c.Code, deps,
		c.Integration, c.SmartPrompt, c.PreviewComponentPath,
	)
	result, err := scanComponent(row)
	if err != nil {
		return nil, fmt.Errorf("create component: %w", err)
	}
	return result, nil
}

// UpdateParams carries the fields of a partial component update.
// Nil fields are left untouched.
type UpdateParams struct {
	Name                 *string
	Description          *string
	Category             *models.Category
	Tags                 *[]string
	Code                 *string
	Dependencies         *[]string
	Integration          *string
	SmartPrompt          *string
	PreviewComponentPath *string
}

// Update applies the non-nil fields of p to the component with the given
// ID and returns the updated row. Returns nil if the component does not exist.
func (s *ComponentStore) Update(id string, p UpdateParams) (*models.Component, error) {
	var sets []string
	var args []any

	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if p.Name != nil {
		set("name", *p.Name)
	}
	if p.Description != nil {
		set("description", *p.Description)
	}
	if p.Category != nil {
		set("category", *p.Category)
	}
	if p.Tags != nil {
		tags, err := json.Marshal(*p.Tags)
		if err != nil {
			return nil, fmt.Errorf("encode tags: %w", err)
		}
		set("tags", tags)
	}
	if p.Code != nil {
		set("code", *p.Code)
	}
	if p.Dependencies != nil {
		deps, err := json.Marshal(*p.Dependencies)
		if err != nil {
			return nil, fmt.Errorf("encode dependencies: %w", err)
		}
		set("dependencies", deps)
	}
	if p.Integration != nil {
		set("integration", *p.Integration)
	}
	if p.SmartPrompt != nil {
		set("smart_prompt", *p.SmartPrompt)
	}
	if p.PreviewComponentPath != nil {
		set("preview_component_path", *p.PreviewComponentPath)
	}

	if len(sets) == 0 {
		// Nothing to change; return the current row.
		return s.FindByID(id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE components SET %s WHERE id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args), componentColumns,
	)

	row := s.db.QueryRow(query, args...)
	result, err := scanComponent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update component: %w", err)
	}
	return result, nil
}

// Delete removes a component by ID. Deleting a missing component is not
// an error.
func (s *ComponentStore) Delete(id string) error {
	if _, err := s.db.Exec("DELETE FROM components WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	return nil
}

// IncrementViewCount atomically bumps a component's view counter.
func (s *ComponentStore) IncrementViewCount(id string) error {
	if _, err := s.db.Exec("SELECT increment_view_count($1)", id); err != nil {
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// IncrementCopyCount atomically bumps a component's copy counter.
func (s *ComponentStore) IncrementCopyCount(id string) error {
	if _, err := s.db.Exec("SELECT increment_copy_count($1)", id); err != nil {
		return fmt.Errorf("increment copy count: %w", err)
	}
	return nil
}
