// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Section kinds
const (
	KindBanner        = "banner"
	KindPost          = "post"
	KindNews          = "news"
	KindFooter        = "footer"
	KindSportGame     = "sport_game"
	KindCasinoCompany = "casino_company"
	KindPage          = "page"
)

// ValidKind reports whether kind is a known section kind.
func ValidKind(kind string) bool {
	switch kind {
	case KindBanner, KindPost, KindNews, KindFooter, KindSportGame, KindCasinoCompany, KindPage:
		return true
	}
	return false
}

// Request types

type CreateSectionRequest struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Kind  string `json:"kind"`
}

type CreateItemRequest struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	LinkURL string `json:"link_url"`
	Active  *bool  `json:"active,omitempty"` // defaults to true
}

// Nil fields are left unchanged
type UpdateItemRequest struct {
	Title   *string `json:"title,omitempty"`
	Body    *string `json:"body,omitempty"`
	LinkURL *string `json:"link_url,omitempty"`
	Active  *bool   `json:"active,omitempty"`
}

// Move is one drag gesture: picked up at From, dropped at To
type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type ReorderRequest struct {
	Moves []Move `json:"moves"`
}

type OrderEntry struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"display_order"`
}

type BulkOrderRequest struct {
	Orders []OrderEntry `json:"orders"`
}

// Response types

type CreateItemResponse struct {
	ItemID       string `json:"item_id"`
	DisplayOrder int    `json:"display_order"`
}

type ItemList struct {
	SectionID string `json:"section_id"`
	Items     []Item `json:"items"`
}

type ReorderResponse struct {
	SectionID string `json:"section_id"`
	Applied   int    `json:"applied"` // moves that changed the order
	Items     []Item `json:"items"`
}

// Domain types

type Section struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Kind      string    `json:"kind"`
	ItemCount int       `json:"item_count"`
	CreatedAt time.Time `json:"created_at"`
}

type Item struct {
	ID           string    `json:"id"`
	SectionID    string    `json:"section_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	LinkURL      string    `json:"link_url"`
	Active       bool      `json:"active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Age          string    `json:"age,omitempty"` // e.g. "3 hours ago"
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
