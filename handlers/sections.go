// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielhkuo/orderdesk/auth"
	"github.com/danielhkuo/orderdesk/middleware"
	"github.com/danielhkuo/orderdesk/models"
)

type SectionHandler struct {
	db *sql.DB
}

func NewSectionHandler(db *sql.DB) *SectionHandler {
	return &SectionHandler{db: db}
}

// CreateSection handles POST /sections
func (h *SectionHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if err := auth.ValidateSlug(req.ID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id must be a lowercase slug")
		return
	}
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if !models.ValidKind(req.Kind) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "unknown kind")
		return
	}

	ctx := r.Context()
	createdAt := time.Now().UTC()
	res, err := h.db.ExecContext(ctx, `
		INSERT INTO section (id, title, kind, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`, req.ID, req.Title, req.Kind, createdAt)
	if err != nil {
		slog.Error("failed to insert section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create section")
		return
	}
	n, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read inserted rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create section")
		return
	}
	if n == 0 {
		middleware.ErrorResponse(w, http.StatusConflict, "Section already exists")
		return
	}

	slog.Info("section created", "section_id", req.ID, "kind", req.Kind)

	middleware.JSONResponse(w, http.StatusCreated, models.Section{
		ID:        req.ID,
		Title:     req.Title,
		Kind:      req.Kind,
		CreatedAt: createdAt,
	})
}

// ListSections handles GET /sections
func (h *SectionHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.QueryContext(r.Context(), `
		SELECT s.id, s.title, s.kind, s.created_at, COUNT(i.id)
		FROM section s
		LEFT JOIN item i ON i.section_id = s.id
		GROUP BY s.id, s.title, s.kind, s.created_at
		ORDER BY s.id
	`)
	if err != nil {
		slog.Error("failed to query sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.Title, &s.Kind, &s.CreatedAt, &s.ItemCount); err != nil {
			slog.Error("failed to scan section", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		slog.Error("failed to iterate sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, sections)
}

// DeleteSection handles DELETE /sections/{section}
func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("section")
	if sectionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}

	ctx := r.Context()
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	exists, err := lockSection(ctx, tx, sectionID)
	if err != nil {
		slog.Error("failed to lock section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Section not found")
		return
	}

	// Items first; SQLite does not enforce the cascade unless foreign keys are on.
	if _, err := tx.ExecContext(ctx, "DELETE FROM item WHERE section_id = $1", sectionID); err != nil {
		slog.Error("failed to delete items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete section")
		return
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM section WHERE id = $1", sectionID)
	if err != nil {
		slog.Error("failed to delete section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete section")
		return
	}
	n, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read deleted rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete section")
		return
	}
	if n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Section not found")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete section")
		return
	}

	slog.Info("section deleted", "section_id", sectionID)
	w.WriteHeader(http.StatusNoContent)
}
