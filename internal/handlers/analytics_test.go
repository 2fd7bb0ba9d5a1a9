// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"proplib/internal/models"
)

func TestTrackLocalNoop(t *testing.T) {
	r := testAPI(t)

	var resp map[string]any
	code := doJSON(t, r, http.MethodPost, "/api/analytics/track",
		`{"componentId":"some-id","eventType":"view"}`, &resp)
	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	if resp["success"] != true {
		t.Errorf("success: got %v, want true", resp["success"])
	}
	if resp["mode"] != "local-noop" {
		t.Errorf("mode: got %v, want local-noop", resp["mode"])
	}
}

func TestTrackValidation(t *testing.T) {
	r := testAPI(t)

	tests := []struct {
		name string
		body string
	}{
		{"invalid json", `{not json`},
		{"missing componentId", `{"eventType":"view"}`},
		{"missing eventType", `{"componentId":"some-id"}`},
		{"empty body", `{}`},
		{"unknown eventType", `{"componentId":"some-id","eventType":"hover"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp errorResponse
			code := doJSON(t, r, http.MethodPost, "/api/analytics/track", tt.body, &resp)
			if code != http.StatusBadRequest {
				t.Errorf("status: got %d, want 400", code)
			}
			if resp.Error == "" {
				t.Error("expected an error body")
			}
		})
	}
}

func TestPopularSynthetic(t *testing.T) {
	r := testAPI(t)

	var resp struct {
		Popular []models.PopularComponent `json:"popular"`
		Count   int                       `json:"count"`
	}
	if code := doJSON(t, r, http.MethodGet, "/api/analytics/popular", "", &resp); code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}

	if resp.Count != 10 || len(resp.Popular) != 10 {
		t.Fatalf("count: got %d (%d items), want 10", resp.Count, len(resp.Popular))
	}

	first := resp.Popular[0]
	if first.ViewCount != 1000 || first.CopyCount != 300 || first.PopularityScore != 1900 {
		t.Errorf("first entry counts: got %d/%d/%d, want 1000/300/1900",
			first.ViewCount, first.CopyCount, first.PopularityScore)
	}
	for i := 1; i < len(resp.Popular); i++ {
		if resp.Popular[i].PopularityScore >= resp.Popular[i-1].PopularityScore {
			t.Fatalf("ranking not descending at index %d", i)
		}
	}
}

func TestPopularLimit(t *testing.T) {
	r := testAPI(t)

	tests := []struct {
		name   string
		target string
		want   int
	}{
		{"explicit", "/api/analytics/popular?limit=5", 5},
		{"at cap", "/api/analytics/popular?limit=50", 50},
		{"above cap", "/api/analytics/popular?limit=100", 50},
		{"zero falls back", "/api/analytics/popular?limit=0", 10},
		{"malformed falls back", "/api/analytics/popular?limit=abc", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp struct {
				Count int `json:"count"`
			}
			doJSON(t, r, http.MethodGet, tt.target, "", &resp)
			if resp.Count != tt.want {
				t.Errorf("count: got %d, want %d", resp.Count, tt.want)
			}
		})
	}
}
