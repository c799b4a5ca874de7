// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the orderdesk API.

# Handler Types

Each handler is a struct holding the database handle:

  - SectionHandler: Section create, list, delete
  - ItemHandler: Item CRUD plus ordering

	itemHandler := handlers.NewItemHandler(db)

# Items

	POST   /sections/{section}/items  → CreateItem (appended at the end)
	GET    /sections/{section}/items  → ListItems (display order)
	GET    /items/{id}                → GetItem
	PUT    /items/{id}                → UpdateItem (partial)
	DELETE /items/{id}                → DeleteItem (renumbers the rest)

# Ordering

Two ways to change the order of a section:

	POST /sections/{section}/items/reorder → ReorderItems
	PUT  /sections/{section}/items/order   → SetOrder

ReorderItems takes drag moves and replays them through a reorder.Manager
against the stored order, then writes display_order = position for every
item. Moves use splice semantics:

	[A B C D] {from: 0, to: 2} → [B C A D]

SetOrder writes explicit display_order values for the listed items, the
bulk update the console sends after a drag in a modal list.

Both run in a single transaction; any invalid entry leaves the section
unchanged.

Mutating routes require the X-Admin-Key header (see router).
*/
package handlers
