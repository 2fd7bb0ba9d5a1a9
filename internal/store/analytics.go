// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"proplib/internal/models"
)

// AnalyticsStore manages the component usage event log, the search query
// log, and the popularity ranking backed by the popular_components
// materialized view.
type AnalyticsStore struct {
	db *sql.DB
}

// NewAnalyticsStore returns a new AnalyticsStore.
func NewAnalyticsStore(db *sql.DB) *AnalyticsStore {
	return &AnalyticsStore{db: db}
}

// InsertEvent appends one event to the log. EventData may be nil.
func (s *AnalyticsStore) InsertEvent(componentID string, eventType models.EventType, eventData map[string]any) error {
	var data []byte
	if eventData != nil {
		var err error
		data, err = json.Marshal(eventData)
		if err != nil {
			return fmt.Errorf("encode event data: %w", err)
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO analytics_events (id, component_id, event_type, event_data)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), componentID, eventType, data)
	if err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}

// RecordSearch logs one search query and how many results it produced.
func (s *AnalyticsStore) RecordSearch(query string, resultsCount int) error {
	_, err := s.db.Exec(`
		INSERT INTO search_queries (id, query, results_count)
		VALUES ($1, $2, $3)
	`, uuid.New(), query, resultsCount)
	if err != nil {
		return fmt.Errorf("record search query: %w", err)
	}
	return nil
}

// Popular returns the top-ranked components from the materialized view.
// The view is refreshed out of band via RefreshPopular.
func (s *AnalyticsStore) Popular(limit int) ([]models.PopularComponent, error) {
	rows, err := s.db.Query(`
		SELECT id, name, category, view_count, copy_count, popularity_score
		FROM popular_components
		ORDER BY popularity_score DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list popular components: %w", err)
	}
	defer rows.Close()

	var items []models.PopularComponent
	for rows.Next() {
		var pc models.PopularComponent
		if err := rows.Scan(
			&pc.ID, &pc.Name, &pc.Category,
			&pc.ViewCount, &pc.CopyCount, &pc.PopularityScore,
		); err != nil {
			return nil, fmt.Errorf("scan popular component: %w", err)
		}
		items = append(items, pc)
	}
	return items, rows.Err()
}

// RefreshPopular rebuilds the popularity ranking from current counters.
func (s *AnalyticsStore) RefreshPopular() error {
	if _, err := s.db.Exec("SELECT refresh_popular_components()"); err != nil {
		return fmt.Errorf("refresh popular components: %w", err)
	}
	return nil
}
