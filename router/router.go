// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/danielhkuo/orderdesk/cliparse"
	"github.com/danielhkuo/orderdesk/handlers"
	"github.com/danielhkuo/orderdesk/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	sectionHandler := handlers.NewSectionHandler(db)
	itemHandler := handlers.NewItemHandler(db)

	admin := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireAdmin(cfg.AdminKey, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Sections
	mux.HandleFunc("GET /sections", middleware.WithLogging(sectionHandler.ListSections))
	mux.HandleFunc("POST /sections", admin(sectionHandler.CreateSection))
	mux.HandleFunc("DELETE /sections/{section}", admin(sectionHandler.DeleteSection))

	// Items
	mux.HandleFunc("GET /sections/{section}/items", middleware.WithLogging(itemHandler.ListItems))
	mux.HandleFunc("POST /sections/{section}/items", admin(itemHandler.CreateItem))
	mux.HandleFunc("GET /items/{id}", middleware.WithLogging(itemHandler.GetItem))
	mux.HandleFunc("PUT /items/{id}", admin(itemHandler.UpdateItem))
	mux.HandleFunc("DELETE /items/{id}", admin(itemHandler.DeleteItem))

	// Ordering
	mux.HandleFunc("POST /sections/{section}/items/reorder", admin(itemHandler.ReorderItems))
	mux.HandleFunc("PUT /sections/{section}/items/order", admin(itemHandler.SetOrder))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("orderdesk API v1"))
	})

	var h http.Handler = mux
	h = middleware.CORS(cfg.AllowedOrigins)(h)
	h = chimw.Recoverer(h)
	h = chimw.RealIP(h)
	h = chimw.RequestID(h)
	return h
}
