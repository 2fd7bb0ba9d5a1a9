// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"proplib/internal/cache"
	"proplib/internal/models"
	"proplib/internal/store"
)

// Admin groups handlers for the administrative write path. The generated
// local catalog is immutable, so writes go to PostgreSQL only and every
// handler answers 503 when no database is configured. Each successful
// write invalidates the response cache.
type Admin struct {
	components *store.ComponentStore // nil when PostgreSQL is not configured
	analytics  *store.AnalyticsStore // nil when PostgreSQL is not configured
	respCache  *cache.ResponseCache  // nil when Valkey is not configured
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(components *store.ComponentStore, analytics *store.AnalyticsStore, respCache *cache.ResponseCache) *Admin {
	return &Admin{components: components, analytics: analytics, respCache: respCache}
}

// requireStore answers 503 and returns false when PostgreSQL is not
// configured.
func (a *Admin) requireStore(w http.ResponseWriter) bool {
	if a.components == nil {
		writeError(w, http.StatusServiceUnavailable, "Component database is not configured")
		return false
	}
	return true
}

// Create serves POST /api/admin/components: inserts a new component.
func (a *Admin) Create(w http.ResponseWriter, r *http.Request) {
	if !a.requireStore(w) {
		return
	}

	var rec models.Component
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if msg := validateComponent(&rec); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := a.components.Create(&rec)
	if err != nil {
		slog.Error("create component failed", "error", err, "id", rec.ID)
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to create component", err.Error())
		return
	}

	a.respCache.InvalidateAll(r.Context())
	slog.Info("component created", "id", created.ID, "category", created.Category)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"component": created,
	})
}

// updateRequest carries the optional fields of PUT /api/admin/components/{id}.
// Absent fields stay untouched.
type updateRequest struct {
	Name                 *string          `json:"name"`
	Description          *string          `json:"description"`
	Category             *models.Category `json:"category"`
	Tags                 *[]string        `json:"tags"`
	Code                 *string          `json:"code"`
	Dependencies         *[]string        `json:"dependencies"`
	Integration          *string          `json:"integration"`
	SmartPrompt          *string          `json:"smart_prompt"`
	PreviewComponentPath *string          `json:"preview_component_path"`
}

// Update serves PUT /api/admin/components/{id}: a partial update.
func (a *Admin) Update(w http.ResponseWriter, r *http.Request) {
	if !a.requireStore(w) {
		return
	}
	id := chi.URLParam(r, "id")

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if req.Category != nil && !req.Category.IsValid() {
		writeError(w, http.StatusBadRequest, "Invalid category: "+string(*req.Category))
		return
	}

	updated, err := a.components.Update(id, store.UpdateParams{
		Name:                 req.Name,
		Description:          req.Description,
		Category:             req.Category,
		Tags:                 req.Tags,
		Code:                 req.Code,
		Dependencies:         req.Dependencies,
		Integration:          req.Integration,
		SmartPrompt:          req.SmartPrompt,
		PreviewComponentPath: req.PreviewComponentPath,
	})
	if err != nil {
		slog.Error("update component failed", "error", err, "id", id)
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to update component", err.Error())
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "Component not found")
		return
	}

	a.respCache.InvalidateAll(r.Context())
	slog.Info("component updated", "id", id)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"component": updated,
	})
}

// Delete serves DELETE /api/admin/components/{id}.
func (a *Admin) Delete(w http.ResponseWriter, r *http.Request) {
	if !a.requireStore(w) {
		return
	}
	id := chi.URLParam(r, "id")

	if err := a.components.Delete(id); err != nil {
		slog.Error("delete component failed", "error", err, "id", id)
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to delete component", err.Error())
		return
	}

	a.respCache.InvalidateAll(r.Context())
	slog.Info("component deleted", "id", id)

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Component deleted successfully",
	})
}

// RefreshAnalytics serves POST /api/admin/refresh-analytics: rebuilds the
// popularity ranking from the current counters.
func (a *Admin) RefreshAnalytics(w http.ResponseWriter, r *http.Request) {
	if a.analytics == nil {
		writeError(w, http.StatusServiceUnavailable, "Component database is not configured")
		return
	}

	if err := a.analytics.RefreshPopular(); err != nil {
		slog.Error("refresh analytics failed", "error", err)
		writeErrorDetail(w, http.StatusInternalServerError, "Failed to refresh analytics", err.Error())
		return
	}

	a.respCache.InvalidateAll(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Analytics refreshed successfully",
	})
}
