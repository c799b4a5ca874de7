// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/orderdesk/auth"
	"github.com/danielhkuo/orderdesk/cliparse"
	"github.com/danielhkuo/orderdesk/db"
)

// TestAdminKey is the admin key used by GetTestConfig
const TestAdminKey = "test-admin-key"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.Config{DatabaseType: "sqlite", DatabaseURL: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    ":memory:",
		DatabaseType:   "sqlite",
		AdminKey:       TestAdminKey,
		AllowedOrigins: []string{"*"},
	}
}

// AdminHeaders returns headers carrying the test admin key
func AdminHeaders() map[string]string {
	return map[string]string{"X-Admin-Key": TestAdminKey}
}

// CreateTestSection inserts a section
func CreateTestSection(t *testing.T, db *sql.DB, sectionID, kind string) {
	t.Helper()

	_, err := db.Exec(`
		INSERT INTO section (id, title, kind, created_at)
		VALUES ($1, $2, $3, $4)
	`, sectionID, "Section "+sectionID, kind, time.Now().UTC())
	if err != nil {
		t.Fatalf("Failed to create test section: %v", err)
	}
}

// AddTestItems appends items with the given titles to a section, in order,
// and returns their IDs
func AddTestItems(t *testing.T, db *sql.DB, sectionID string, titles ...string) []string {
	t.Helper()

	var next int
	if err := db.QueryRow(
		"SELECT COALESCE(MAX(display_order), -1) + 1 FROM item WHERE section_id = $1", sectionID,
	).Scan(&next); err != nil {
		t.Fatalf("Failed to query display order: %v", err)
	}

	ids := make([]string, 0, len(titles))
	for i, title := range titles {
		id := auth.GenerateID()
		now := time.Now().UTC()
		_, err := db.Exec(`
			INSERT INTO item (id, section_id, title, body, link_url, active, display_order, created_at, updated_at)
			VALUES ($1, $2, $3, '', '', $4, $5, $6, $7)
		`, id, sectionID, title, true, next+i, now, now)
		if err != nil {
			t.Fatalf("Failed to create test item: %v", err)
		}
		ids = append(ids, id)
	}

	return ids
}

// ItemTitles returns a section's item titles in display order
func ItemTitles(t *testing.T, db *sql.DB, sectionID string) []string {
	t.Helper()

	rows, err := db.Query(`
		SELECT title FROM item
		WHERE section_id = $1
		ORDER BY display_order, created_at, id
	`, sectionID)
	if err != nil {
		t.Fatalf("Failed to query items: %v", err)
	}
	defer rows.Close()

	titles := []string{}
	for rows.Next() {
		var title string
		if err := rows.Scan(&title); err != nil {
			t.Fatalf("Failed to scan item: %v", err)
		}
		titles = append(titles, title)
	}
	return titles
}

// DisplayOrders returns a section's display_order values in order
func DisplayOrders(t *testing.T, db *sql.DB, sectionID string) []int {
	t.Helper()

	rows, err := db.Query(`
		SELECT display_order FROM item
		WHERE section_id = $1
		ORDER BY display_order, created_at, id
	`, sectionID)
	if err != nil {
		t.Fatalf("Failed to query items: %v", err)
	}
	defer rows.Close()

	orders := []int{}
	for rows.Next() {
		var o int
		if err := rows.Scan(&o); err != nil {
			t.Fatalf("Failed to scan display order: %v", err)
		}
		orders = append(orders, o)
	}
	return orders
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
