// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires HTTP routes to handlers.

	handler := router.NewRouter(db, cfg)
	server := http.Server{Handler: handler, Addr: ":3318"}

# Routes

Public reads:

	GET /health
	GET /sections
	GET /sections/{section}/items
	GET /items/{id}

Admin (X-Admin-Key required):

	POST   /sections
	DELETE /sections/{section}
	POST   /sections/{section}/items
	PUT    /items/{id}
	DELETE /items/{id}
	POST   /sections/{section}/items/reorder
	PUT    /sections/{section}/items/order

# Middleware Stack

Outermost first: chi RequestID, RealIP, Recoverer, then CORS, then the
ServeMux. Every route except /health and / is wrapped in WithLogging.
*/
package router
