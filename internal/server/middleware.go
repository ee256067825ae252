// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/davetashner/lakedash/internal/session"
)

type ctxKey struct{}

// accessLog writes one INFO line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		slog.Info("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
		)
	})
}

// withSession attaches the caller's session, minting one and setting the
// cookie when the request has none or its session expired.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(session.CookieName); err == nil {
			id = c.Value
		}

		sess, created, err := s.sessions.GetOrCreate(id)
		if err != nil {
			slog.Error("create session", "error", err)
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		if created {
			http.SetCookie(w, &http.Cookie{
				Name:     session.CookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(ctxKey{}).(*session.Session)
	return sess
}
