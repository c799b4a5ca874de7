// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

  - CreateSectionRequest: id, title, kind
  - CreateItemRequest: title, body, link_url, active
  - UpdateItemRequest: partial update, nil fields untouched
  - ReorderRequest: list of drag moves (from, to)
  - BulkOrderRequest: explicit display_order per item id

# Domain Types

  - Section: a named, ordered list of items of one kind
  - Item: a single piece of content with its display_order

Display orders within a section are position indexes starting at 0.

# Section Kinds

	banner, post, news, footer, sport_game, casino_company, page

Use ValidKind to check user input.
*/
package models
