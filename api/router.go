// Package api serves the admin panel operations as a JSON HTTP API.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestLogger(h.log))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cards", h.synced(h.ListCards)).Methods("GET")
	api.HandleFunc("/cards", h.synced(h.CreateCard)).Methods("POST")
	api.HandleFunc("/cards/{id:[0-9]+}", h.synced(h.UpdateCard)).Methods("PUT")
	api.HandleFunc("/cards/{id:[0-9]+}", h.synced(h.DeleteCard)).Methods("DELETE")
	api.HandleFunc("/transactions", h.synced(h.ListTransactions)).Methods("GET")
	api.HandleFunc("/transactions", h.synced(h.CreateTransaction)).Methods("POST")
	api.HandleFunc("/transactions/{id:[0-9]+}", h.synced(h.UpdateTransaction)).Methods("PUT")
	api.HandleFunc("/transactions/{id:[0-9]+}", h.synced(h.DeleteTransaction)).Methods("DELETE")
	api.HandleFunc("/transfer", h.synced(h.Transfer)).Methods("POST")
	api.HandleFunc("/reset", h.synced(h.Reset)).Methods("POST")
	api.HandleFunc("/reload", h.synced(h.Reload)).Methods("POST")
	return r
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func requestLogger(log zerolog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := uuid.NewString()
			w.Header().Set("X-Request-Id", id)
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()
			next.ServeHTTP(sw, r)
			log.Info().
				Str("request_id", id).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", sw.status).
				Dur("took", time.Since(start)).
				Msg("http request")
		})
	}
}
