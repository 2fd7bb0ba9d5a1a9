// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"proplib/internal/models"
)

// Validation limits for component fields.
const (
	maxIDLen          = 300
	maxNameLen        = 300
	maxDescriptionLen = 2_000
	maxTagCount       = 20
	maxTagLen         = 100
	maxCodeLen        = 100_000
	maxIntegrationLen = 10_000
	maxPromptLen      = 20_000
	maxPreviewPathLen = 300
)

// validateComponent checks a full component payload for the create path
// and returns the first error found, or "" when the payload is valid.
func validateComponent(c *models.Component) string {
	if strings.TrimSpace(c.ID) == "" {
		return "Missing required field: id"
	}
	if strings.TrimSpace(c.Name) == "" {
		return "Missing required field: name"
	}
	if strings.TrimSpace(c.Description) == "" {
		return "Missing required field: description"
	}
	if c.Category == "" {
		return "Missing required field: category"
	}
	if strings.TrimSpace(c.Code) == "" {
		return "Missing required field: code"
	}
	if strings.TrimSpace(c.Integration) == "" {
		return "Missing required field: integration"
	}
	if strings.TrimSpace(c.PreviewComponentPath) == "" {
		return "Missing required field: preview_component_path"
	}

	if !c.Category.IsValid() {
		return "Invalid category: " + string(c.Category)
	}

	return validateComponentLimits(c)
}

// validateComponentLimits enforces field size ceilings shared by the
// create and update paths.
func validateComponentLimits(c *models.Component) string {
	if utf8.RuneCountInString(c.ID) > maxIDLen {
		return "id is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(c.Name) > maxNameLen {
		return "name is too long (max 300 characters)"
	}
	if utf8.RuneCountInString(c.Description) > maxDescriptionLen {
		return "description is too long (max 2,000 characters)"
	}
	if len(c.Tags) > maxTagCount {
		return "too many tags (max 20)"
	}
	for _, tag := range c.Tags {
		if utf8.RuneCountInString(tag) > maxTagLen {
			return "tag is too long (max 100 characters)"
		}
	}
	if utf8.RuneCountInString(c.Code) > maxCodeLen {
		return "code is too long (max 100,000 characters)"
	}
	if utf8.RuneCountInString(c.Integration) > maxIntegrationLen {
		return "integration is too long (max 10,000 characters)"
	}
	if c.SmartPrompt != nil && utf8.RuneCountInString(*c.SmartPrompt) > maxPromptLen {
		return "smart_prompt is too long (max 20,000 characters)"
	}
	if utf8.RuneCountInString(c.PreviewComponentPath) > maxPreviewPathLen {
		return "preview_component_path is too long (max 300 characters)"
	}
	return ""
}
