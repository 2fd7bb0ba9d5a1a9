// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Category identifies which section of the catalog a component belongs to.
// The set is closed: every record's category is one of the constants below.
type Category string

const (
	CategoryHeaders    Category = "headers"
	CategorySearch     Category = "search"
	CategoryNavigation Category = "navigation"
	CategoryCards      Category = "cards"
	CategoryForms      Category = "forms"
	CategoryAnimations Category = "animations"
)

// Categories lists every valid category in catalog order.
var Categories = []Category{
	CategoryHeaders,
	CategorySearch,
	CategoryNavigation,
	CategoryCards,
	CategoryForms,
	CategoryAnimations,
}

// IsValid reports whether c is a member of the closed category set.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Component is one catalog entry: a UI component snippet plus the metadata
// needed to list, search, and integrate it. Records come from PostgreSQL
// when configured, or from the generated local catalog otherwise.
type Component struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	Category             Category   `json:"category"`
	Tags                 []string   `json:"tags"`
	Code                 string     `json:"code"`
	Dependencies         []string   `json:"dependencies"`
	Integration          string     `json:"integration"`
	SmartPrompt          *string    `json:"smart_prompt"`
	PreviewComponentPath string     `json:"preview_component_path"`
	ViewCount            int        `json:"view_count,omitempty"`
	CopyCount            int        `json:"copy_count,omitempty"`
	CreatedAt            *time.Time `json:"created_at,omitempty"`
	UpdatedAt            *time.Time `json:"updated_at,omitempty"`
}

// HasTag reports whether the component carries the given tag.
func (c *Component) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// EventType classifies an analytics event.
type EventType string

const (
	EventView   EventType = "view"
	EventCopy   EventType = "copy"
	EventSearch EventType = "search"
)

// IsValid reports whether e is a known event type.
func (e EventType) IsValid() bool {
	return e == EventView || e == EventCopy || e == EventSearch
}

// AnalyticsEvent is one row of the component usage event log.
type AnalyticsEvent struct {
	ID          string         `json:"id"`
	ComponentID string         `json:"component_id"`
	EventType   EventType      `json:"event_type"`
	EventData   map[string]any `json:"event_data,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// PopularComponent is one row of the popularity ranking, backed by the
// popular_components materialized view when PostgreSQL is configured.
type PopularComponent struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Category        Category `json:"category"`
	ViewCount       int      `json:"view_count"`
	CopyCount       int      `json:"copy_count"`
	PopularityScore int      `json:"popularity_score"`
}
