// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"proplib/internal/models"
)

func TestInsertEvent(t *testing.T) {
	db := testDB(t)
	components := NewComponentStore(db)
	analytics := NewAnalyticsStore(db)

	id := "test-events-forms"
	cleanComponents(t, db, id)
	t.Cleanup(func() { cleanComponents(t, db, id) })

	if _, err := components.Create(testComponent(id)); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := analytics.InsertEvent(id, models.EventView, nil); err != nil {
		t.Fatalf("InsertEvent without data: %v", err)
	}
	if err := analytics.InsertEvent(id, models.EventCopy, map[string]any{"source": "detail-page"}); err != nil {
		t.Fatalf("InsertEvent with data: %v", err)
	}

	var count int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM analytics_events WHERE component_id = $1", id,
	).Scan(&count); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 2 {
		t.Errorf("events: got %d, want 2", count)
	}
}

func TestRecordSearch(t *testing.T) {
	db := testDB(t)
	analytics := NewAnalyticsStore(db)

	query := "test-search-query-glass"
	cleanSearchQueries(t, db, query)
	t.Cleanup(func() { cleanSearchQueries(t, db, query) })

	if err := analytics.RecordSearch(query, 7); err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}

	var results int
	if err := db.QueryRow(
		"SELECT results_count FROM search_queries WHERE query = $1", query,
	).Scan(&results); err != nil {
		t.Fatalf("read back search query: %v", err)
	}
	if results != 7 {
		t.Errorf("results_count: got %d, want 7", results)
	}
}

func TestPopularRanking(t *testing.T) {
	db := testDB(t)
	components := NewComponentStore(db)
	analytics := NewAnalyticsStore(db)

	id := "test-popular-forms"
	cleanComponents(t, db, id)
	t.Cleanup(func() { cleanComponents(t, db, id) })

	if _, err := components.Create(testComponent(id)); err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Score is view_count + copy_count * 3.
	for i := 0; i < 4; i++ {
		if err := components.IncrementViewCount(id); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}
	if err := components.IncrementCopyCount(id); err != nil {
		t.Fatalf("IncrementCopyCount: %v", err)
	}

	if err := analytics.RefreshPopular(); err != nil {
		t.Fatalf("RefreshPopular: %v", err)
	}

	popular, err := analytics.Popular(1000)
	if err != nil {
		t.Fatalf("Popular: %v", err)
	}

	var found *models.PopularComponent
	for i := range popular {
		if popular[i].ID == id {
			found = &popular[i]
			break
		}
	}
	if found == nil {
		t.Fatal("test component missing from the ranking after refresh")
	}
	if found.ViewCount != 4 || found.CopyCount != 1 {
		t.Errorf("counters: got %d/%d, want 4/1", found.ViewCount, found.CopyCount)
	}
	if found.PopularityScore != 7 {
		t.Errorf("score: got %d, want 7", found.PopularityScore)
	}

	// Ranking is ordered by score descending.
	for i := 1; i < len(popular); i++ {
		if popular[i].PopularityScore > popular[i-1].PopularityScore {
			t.Fatalf("ranking not sorted at index %d", i)
		}
	}
}
