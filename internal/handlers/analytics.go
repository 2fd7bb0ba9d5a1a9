// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"proplib/internal/cache"
	"proplib/internal/catalog"
	"proplib/internal/models"
	"proplib/internal/store"
)

// maxPopularLimit caps the popularity ranking page size.
const maxPopularLimit = 50

// Analytics groups handlers for usage tracking and the popularity ranking.
// Without PostgreSQL, tracking is a no-op and the ranking is synthesized
// from the local catalog.
type Analytics struct {
	catalog    *catalog.Catalog
	components *store.ComponentStore // nil when PostgreSQL is not configured
	analytics  *store.AnalyticsStore // nil when PostgreSQL is not configured
	respCache  *cache.ResponseCache  // nil when Valkey is not configured
}

// NewAnalytics creates a new Analytics handler group. Stores and cache may
// be nil.
func NewAnalytics(cat *catalog.Catalog, components *store.ComponentStore, analytics *store.AnalyticsStore, respCache *cache.ResponseCache) *Analytics {
	return &Analytics{catalog: cat, components: components, analytics: analytics, respCache: respCache}
}

// trackRequest is the body of POST /api/analytics/track.
type trackRequest struct {
	ComponentID string           `json:"componentId"`
	EventType   models.EventType `json:"eventType"`
	EventData   map[string]any   `json:"eventData"`
}

// Track serves POST /api/analytics/track: bumps the per-component counter
// and appends to the event log. Counter updates are synchronous; the event
// log insert is fire-and-forget so slow writes never delay the caller.
func (a *Analytics) Track(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.ComponentID == "" || req.EventType == "" {
		writeError(w, http.StatusBadRequest, "Missing required fields: componentId and eventType")
		return
	}
	if !req.EventType.IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid eventType. Must be view, copy, or search")
		return
	}

	if a.analytics == nil {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "mode": "local-noop"})
		return
	}

	switch req.EventType {
	case models.EventView:
		if err := a.components.IncrementViewCount(req.ComponentID); err != nil {
			slog.Warn("increment view count failed", "error", err, "component", req.ComponentID)
		}
	case models.EventCopy:
		if err := a.components.IncrementCopyCount(req.ComponentID); err != nil {
			slog.Warn("increment copy count failed", "error", err, "component", req.ComponentID)
		}
	}

	go func() {
		if err := a.analytics.InsertEvent(req.ComponentID, req.EventType, req.EventData); err != nil {
			slog.Warn("insert analytics event failed", "error", err, "component", req.ComponentID)
		}
	}()

	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// Popular serves GET /api/analytics/popular: the top-ranked components.
// The ranking only moves on analytics refresh, so bodies are cached like
// listings and invalidated by the same administrative writes.
func (a *Analytics) Popular(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	limit := intParam(r.URL.Query().Get("limit"), 10)
	if limit < 1 {
		limit = 10
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}

	cacheKey := cache.ListKey(r.URL.Path, r.URL.Query())
	if body, ok := a.respCache.Get(ctx, cacheKey); ok {
		writeJSONBytes(w, http.StatusOK, body)
		return
	}

	if a.analytics == nil {
		a.writePopular(ctx, w, cacheKey, a.syntheticPopular(limit))
		return
	}

	popular, err := a.analytics.Popular(limit)
	if err != nil {
		slog.Error("popular components query failed, serving local ranking", "error", err)
		a.writePopular(ctx, w, cacheKey, a.syntheticPopular(limit))
		return
	}

	a.writePopular(ctx, w, cacheKey, popular)
}

// syntheticPopular fabricates a stable ranking from the head of the local
// catalog so the endpoint stays useful without analytics data.
func (a *Analytics) syntheticPopular(limit int) []models.PopularComponent {
	records := a.catalog.Records()
	if limit > len(records) {
		limit = len(records)
	}

	popular := make([]models.PopularComponent, 0, limit)
	for i := 0; i < limit; i++ {
		rec := records[i]
		popular = append(popular, models.PopularComponent{
			ID:              rec.ID,
			Name:            rec.Name,
			Category:        rec.Category,
			ViewCount:       1000 - i*3,
			CopyCount:       300 - i,
			PopularityScore: 1900 - i*4,
		})
	}
	return popular
}

func (a *Analytics) writePopular(ctx context.Context, w http.ResponseWriter, cacheKey string, popular []models.PopularComponent) {
	if popular == nil {
		popular = []models.PopularComponent{}
	}

	body, err := json.Marshal(map[string]any{
		"popular": popular,
		"count":   len(popular),
	})
	if err != nil {
		slog.Error("marshal popular ranking failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	a.respCache.Set(ctx, cacheKey, body)
	writeJSONBytes(w, http.StatusOK, body)
}
