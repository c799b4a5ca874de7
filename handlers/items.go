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

type ItemHandler struct {
	db *sql.DB
}

func NewItemHandler(db *sql.DB) *ItemHandler {
	return &ItemHandler{db: db}
}

// CreateItem handles POST /sections/{section}/items
// New items go to the end of the section.
func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("section")
	if sectionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}

	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	active := true
	if req.Active != nil {
		active = *req.Active
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

	var displayOrder int
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(display_order), -1) + 1
		FROM item
		WHERE section_id = $1
	`, sectionID).Scan(&displayOrder)
	if err != nil {
		slog.Error("failed to query next display order", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	itemID := auth.GenerateID()
	now := time.Now().UTC()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO item (id, section_id, title, body, link_url, active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, itemID, sectionID, req.Title, req.Body, req.LinkURL, active, displayOrder, now, now)
	if err != nil {
		slog.Error("failed to insert item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create item")
		return
	}

	slog.Info("item created", "section_id", sectionID, "item_id", itemID, "display_order", displayOrder)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateItemResponse{
		ItemID:       itemID,
		DisplayOrder: displayOrder,
	})
}

// ListItems handles GET /sections/{section}/items
func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("section")
	if sectionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}

	ctx := r.Context()
	exists, err := sectionExists(ctx, h.db, sectionID)
	if err != nil {
		slog.Error("failed to query section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Section not found")
		return
	}

	items, err := listItems(ctx, h.db, sectionID)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ItemList{
		SectionID: sectionID,
		Items:     withAge(items),
	})
}

// GetItem handles GET /items/{id}
func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}
	if err := auth.ValidateID(itemID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := getItem(r.Context(), h.db, itemID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to query item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, withAge([]models.Item{item})[0])
}

// UpdateItem handles PUT /items/{id}
// Only fields present in the body are changed; display order is untouched.
func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}
	if err := auth.ValidateID(itemID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req models.UpdateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Title != nil && *req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title cannot be empty")
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

	item, err := getItem(ctx, tx, itemID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to query item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Body != nil {
		item.Body = *req.Body
	}
	if req.LinkURL != nil {
		item.LinkURL = *req.LinkURL
	}
	if req.Active != nil {
		item.Active = *req.Active
	}
	item.UpdatedAt = time.Now().UTC()

	_, err = tx.ExecContext(ctx, `
		UPDATE item
		SET title = $1, body = $2, link_url = $3, active = $4, updated_at = $5
		WHERE id = $6
	`, item.Title, item.Body, item.LinkURL, item.Active, item.UpdatedAt, item.ID)
	if err != nil {
		slog.Error("failed to update item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update item")
		return
	}

	slog.Info("item updated", "item_id", item.ID)

	middleware.JSONResponse(w, http.StatusOK, withAge([]models.Item{item})[0])
}

// DeleteItem handles DELETE /items/{id}
// The remaining items of the section are renumbered without gaps.
func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("id")
	if itemID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "item_id is required")
		return
	}
	if err := auth.ValidateID(itemID); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid item id")
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

	var sectionID string
	err = tx.QueryRowContext(ctx, "SELECT section_id FROM item WHERE id = $1", itemID).Scan(&sectionID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}
	if err != nil {
		slog.Error("failed to query item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if _, err := lockSection(ctx, tx, sectionID); err != nil {
		slog.Error("failed to lock section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM item WHERE id = $1 AND section_id = $2", itemID, sectionID)
	if err != nil {
		slog.Error("failed to delete item", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	n, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read deleted rows", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}
	// A concurrent delete or section removal won the lock first.
	if n == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
		return
	}

	remaining, err := listItems(ctx, tx, sectionID)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if _, err := writePositions(ctx, tx, remaining, time.Now().UTC()); err != nil {
		slog.Error("failed to compact display order", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete item")
		return
	}

	slog.Info("item deleted", "section_id", sectionID, "item_id", itemID)
	w.WriteHeader(http.StatusNoContent)
}
