// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin key checks and identifier helpers.

# Admin Key

Every admin route expects the X-Admin-Key header to match the configured key:

	err := auth.ValidateAdminKey(r.Header.Get("X-Admin-Key"), cfg.AdminKey)

The comparison is constant time.

# IDs

Items use random UUIDs:

	id := auth.GenerateID()

Sections use human-chosen slugs checked with ValidateSlug.
*/
package auth
