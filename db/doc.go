// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates the schema.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg) // "postgres" → lib/pq, "sqlite" → modernc.org/sqlite

SQLite connections are limited to one open connection.

# Schema Creation

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - section: named ordered lists (id is a slug)
  - item: content rows with a per-section display_order

	section 1──* item

Deleting a section deletes its items. The (section_id, display_order) index
serves ordered listing.
*/
package db
