// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
)

// RequireAdmin guards the administrative write path with a static bearer
// token. Requests must carry "Authorization: Bearer <ADMIN_API_KEY>".
// An empty configured key rejects everything, since that means the
// deployment never set one up.
func RequireAdmin(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if apiKey == "" {
				slog.Error("admin request rejected: ADMIN_API_KEY not configured")
				unauthorized(w)
				return
			}

			token := bearerToken(r)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOrCronSecret allows a request through when it carries either the
// admin bearer token or the scheduler's X-Cron-Secret header. Used by the
// analytics refresh endpoint, which is hit both manually and on a schedule.
func AdminOrCronSecret(apiKey, cronSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret := r.Header.Get("X-Cron-Secret"); secret != "" && cronSecret != "" &&
				subtle.ConstantTimeCompare([]byte(secret), []byte(cronSecret)) == 1 {
				next.ServeHTTP(w, r)
				return
			}

			RequireAdmin(apiKey)(next).ServeHTTP(w, r)
		})
	}
}

// bearerToken extracts the token from an Authorization: Bearer header.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(auth, prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Unauthorized - Invalid admin API key"}`))
}
