// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the orderdesk API server.

orderdesk stores the content of a multi-section admin console (banners,
posts, news, footers, sport games, casino companies, pages). Every section
is an ordered list; admins reorder it by dragging, and the server replays
those drags and persists the resulting display order.

# Starting the Server

	DATABASE_URL=file:orderdesk.db ADMIN_KEY=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin-key ... -seed seed.yaml

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): database connection string
  - ADMIN_KEY (-admin-key): value expected in X-Admin-Key

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - SEED_FILE (-seed): YAML sections applied at startup
  - ALLOWED_ORIGINS (-origins): CORS origins (default: *)

# Architecture

  - reorder: drag gesture tracking and splice moves
  - handlers: HTTP request handlers (sections, items, ordering)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, admin key, JSON helpers
  - models: Request/response types
  - auth: Admin key check and IDs
  - db: Connection and schema creation
  - seed: YAML seed loading
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
