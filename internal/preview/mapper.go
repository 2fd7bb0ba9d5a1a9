// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package preview

import "proplib/internal/models"

// ComponentData is a catalog record reshaped for the presentation layer:
// the symbolic preview path is resolved into a concrete preview descriptor
// and field names follow the frontend's convention.
type ComponentData struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Category     models.Category `json:"category"`
	Tags         []string        `json:"tags"`
	Preview      Component       `json:"preview"`
	Code         string          `json:"code"`
	Dependencies []string        `json:"dependencies"`
	Integration  string          `json:"integration"`
	SmartPrompt  string          `json:"smartPrompt,omitempty"`
	PreviewPath  string          `json:"previewPath,omitempty"`
}

// MapComponent converts a stored or generated record into its view shape.
// Preview resolution falls back to the registry default on a miss, so the
// result is always renderable.
func MapComponent(rec models.Component, reg *Registry) ComponentData {
	data := ComponentData{
		ID:           rec.ID,
		Name:         rec.Name,
		Description:  rec.Description,
		Category:     rec.Category,
		Tags:         rec.Tags,
		Preview:      reg.Resolve(rec.PreviewComponentPath),
		Code:         rec.Code,
		Dependencies: rec.Dependencies,
		Integration:  rec.Integration,
		PreviewPath:  rec.PreviewComponentPath,
	}
	if rec.SmartPrompt != nil {
		data.SmartPrompt = *rec.SmartPrompt
	}
	return data
}
