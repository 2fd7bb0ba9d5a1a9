// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"proplib/internal/cache"
	"proplib/internal/catalog"
	"proplib/internal/models"
	"proplib/internal/preview"
	"proplib/internal/store"
)

// Public groups handlers for the read-only catalog API. When PostgreSQL is
// configured it queries the component store; on store errors or when no
// store exists it falls back to the generated local catalog, so the read
// path never fails for persistence reasons.
type Public struct {
	catalog    *catalog.Catalog
	registry   *preview.Registry
	components *store.ComponentStore // nil when PostgreSQL is not configured
	analytics  *store.AnalyticsStore // nil when PostgreSQL is not configured
	respCache  *cache.ResponseCache  // nil when Valkey is not configured
}

// NewPublic creates a new Public handler group. components, analytics, and
// respCache may be nil.
func NewPublic(cat *catalog.Catalog, reg *preview.Registry, components *store.ComponentStore, analytics *store.AnalyticsStore, respCache *cache.ResponseCache) *Public {
	return &Public{
		catalog:    cat,
		registry:   reg,
		components: components,
		analytics:  analytics,
		respCache:  respCache,
	}
}

// List serves GET /api/components: a filtered, paginated component listing
// with pagination metadata.
func (p *Public) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := parseListParams(r)

	cacheKey := cache.ListKey(r.URL.Path, r.URL.Query())
	if body, ok := p.respCache.Get(ctx, cacheKey); ok {
		writeJSONBytes(w, http.StatusOK, body)
		return
	}

	result := p.queryComponents(params)

	// Log search queries out of band; failures never affect the response.
	if search := strings.TrimSpace(params.Search); search != "" && p.analytics != nil {
		go func() {
			if err := p.analytics.RecordSearch(search, result.Total); err != nil {
				slog.Warn("record search query failed", "error", err)
			}
		}()
	}

	body, err := json.Marshal(result)
	if err != nil {
		slog.Error("marshal listing failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	p.respCache.Set(ctx, cacheKey, body)
	writeJSONBytes(w, http.StatusOK, body)
}

// queryComponents runs the listing against PostgreSQL when available,
// falling back to the local catalog query engine otherwise.
func (p *Public) queryComponents(params catalog.Params) catalog.Result {
	if p.components == nil {
		return catalog.Query(p.catalog.Records(), params)
	}

	limit := clampLimit(params.Limit)
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	components, total, err := p.components.List(store.ListParams{
		Category: params.Category,
		Tags:     params.Tags,
		Search:   params.Search,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		slog.Error("component store query failed, serving local catalog", "error", err)
		return catalog.Query(p.catalog.Records(), params)
	}

	return catalog.Result{
		Components: components,
		Total:      total,
		HasMore:    total > offset+limit,
		Limit:      limit,
		Offset:     offset,
	}
}

// Get serves GET /api/components/{id}: a single record by ID.
func (p *Public) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec := p.findComponent(id)
	if rec == nil {
		writeError(w, http.StatusNotFound, "Component not found")
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// Card serves GET /api/components/{id}/card: the record mapped into the
// frontend's view shape, with the preview path resolved to a concrete
// preview descriptor.
func (p *Public) Card(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rec := p.findComponent(id)
	if rec == nil {
		writeError(w, http.StatusNotFound, "Component not found")
		return
	}

	writeJSON(w, http.StatusOK, preview.MapComponent(*rec, p.registry))
}

// Previews serves GET /api/previews: the registered preview descriptors.
func (p *Public) Previews(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"previews": p.registry.List(),
		"default":  preview.DefaultPath,
	})
}

// findComponent looks a record up in PostgreSQL when configured, falling
// back to the local catalog only on store errors. A configured store that
// answers "not found" is authoritative.
func (p *Public) findComponent(id string) *models.Component {
	if p.components != nil {
		rec, err := p.components.FindByID(id)
		if err == nil {
			return rec
		}
		slog.Error("component store lookup failed, trying local catalog", "error", err, "id", id)
	}
	return p.catalog.FindByID(id)
}

// clampLimit bounds a requested page size to [1, MaxLimit].
func clampLimit(limit int) int {
	if limit < 1 {
		return 1
	}
	if limit > catalog.MaxLimit {
		return catalog.MaxLimit
	}
	return limit
}

// Health serves GET /health.
func Health(w http.ResponseWriter, _ *http.Request) {
	writeJSONBytes(w, http.StatusOK, []byte(`{"status":"ok"}`))
}
