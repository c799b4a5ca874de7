// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/danielhkuo/orderdesk/auth"
	"github.com/danielhkuo/orderdesk/middleware"
	"github.com/danielhkuo/orderdesk/models"
	"github.com/danielhkuo/orderdesk/reorder"
)

// ReorderItems handles POST /sections/{section}/items/reorder
//
// Each move is replayed as a drag gesture (BeginDrag(from), Drop(to)) against
// the section's current order, then every item's display_order is set to its
// new position. Moves apply in sequence, so each index refers to the order
// produced by the moves before it.
func (h *ItemHandler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("section")
	if sectionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}

	var req models.ReorderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.Moves) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "moves is required")
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

	items, err := listItems(ctx, tx, sectionID)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := validateMoves(req.Moves, len(items)); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	list := reorder.NewList(items)
	drag := reorder.NewManager(list.Move)
	for _, m := range req.Moves {
		drag.BeginDrag(m.From)
		drag.Drop(m.To)
	}

	ordered := append([]models.Item(nil), list.Items()...)
	changed, err := writePositions(ctx, tx, ordered, time.Now().UTC())
	if err != nil {
		slog.Error("failed to persist display order", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reorder items")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to reorder items")
		return
	}

	slog.Info("items reordered",
		"section_id", sectionID,
		"moves", len(req.Moves),
		"applied", list.Moves(),
		"rows_updated", changed,
	)

	middleware.JSONResponse(w, http.StatusOK, models.ReorderResponse{
		SectionID: sectionID,
		Applied:   list.Moves(),
		Items:     withAge(ordered),
	})
}

// SetOrder handles PUT /sections/{section}/items/order
// Writes the given display_order values as-is; items not listed keep theirs.
func (h *ItemHandler) SetOrder(w http.ResponseWriter, r *http.Request) {
	sectionID := r.PathValue("section")
	if sectionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "section is required")
		return
	}

	var req models.BulkOrderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if err := validateOrders(req.Orders); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
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

	now := time.Now().UTC()
	for _, o := range req.Orders {
		res, err := tx.ExecContext(ctx, `
			UPDATE item
			SET display_order = $1, updated_at = $2
			WHERE id = $3 AND section_id = $4
		`, o.DisplayOrder, now, o.ID, sectionID)
		if err != nil {
			slog.Error("failed to update display order", "error", err, "item_id", o.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update order")
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			slog.Error("failed to read updated rows", "error", err, "item_id", o.ID)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update order")
			return
		}
		if n == 0 {
			middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Item %s not found in section", o.ID))
			return
		}
	}

	items, err := listItems(ctx, tx, sectionID)
	if err != nil {
		slog.Error("failed to list items", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	slog.Info("display order updated", "section_id", sectionID, "items", len(req.Orders))

	middleware.JSONResponse(w, http.StatusOK, models.ItemList{
		SectionID: sectionID,
		Items:     withAge(items),
	})
}

// validateMoves checks every index against the list length. The reorder
// helper does no bounds checking of its own.
func validateMoves(moves []models.Move, n int) error {
	for i, m := range moves {
		if m.From < 0 || m.From >= n {
			return fmt.Errorf("moves[%d].from %d out of range [0, %d)", i, m.From, n)
		}
		if m.To < 0 || m.To >= n {
			return fmt.Errorf("moves[%d].to %d out of range [0, %d)", i, m.To, n)
		}
	}
	return nil
}

func validateOrders(orders []models.OrderEntry) error {
	if len(orders) == 0 {
		return errors.New("orders is required")
	}
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.ID == "" {
			return errors.New("id is required")
		}
		if err := auth.ValidateID(o.ID); err != nil {
			return fmt.Errorf("invalid id %q", o.ID)
		}
		if o.DisplayOrder < 0 {
			return fmt.Errorf("display_order of %s must not be negative", o.ID)
		}
		ids = append(ids, o.ID)
	}
	sort.Strings(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return fmt.Errorf("duplicate id %s", ids[i])
		}
	}
	return nil
}
