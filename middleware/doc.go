// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(status, duration_ms). The request id comes from chi's RequestID middleware
when the router installs it.

# Admin Key

Mutating routes are wrapped with RequireAdmin:

	middleware.RequireAdmin(cfg.AdminKey, itemHandler.DeleteItem)

Requests without a matching X-Admin-Key header get 401.

# CORS Middleware

Enable cross-origin requests for the admin console (backed by rs/cors):

	handler := middleware.CORS(cfg.AllowedOrigins)(mux)

A single "*" reflects any origin. Allowed headers include X-Admin-Key.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CreateItemRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)
*/
package middleware
