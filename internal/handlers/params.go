// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"proplib/internal/catalog"
)

// parseListParams reads the listing query string into catalog params.
// Malformed numbers fall back to defaults; the query engine clamps ranges,
// so nothing here errors.
func parseListParams(r *http.Request) catalog.Params {
	q := r.URL.Query()

	return catalog.Params{
		Category: q.Get("category"),
		Tags:     splitTags(q.Get("tags")),
		Search:   q.Get("search"),
		Limit:    intParam(q.Get("limit"), catalog.DefaultLimit),
		Offset:   intParam(q.Get("offset"), 0),
	}
}

// splitTags parses a comma-separated tag list, dropping blanks.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// intParam parses a base-10 integer, returning fallback when the value is
// absent or unparseable.
func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
