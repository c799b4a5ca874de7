// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - AdminKey: Value expected in the X-Admin-Key header (required)
  - SeedFile: Optional YAML seed applied at startup
  - AllowedOrigins: CORS origins (default: *)

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-admin-key  Admin key
	-seed       Seed file
	-origins    Comma separated CORS origins
	-env        Path to .env file (default: ./.env if present)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	ADMIN_KEY       → -admin-key
	SEED_FILE       → -seed
	ALLOWED_ORIGINS → -origins

CLI flags take precedence over environment variables, and environment
variables take precedence over the .env file.
*/
package cliparse
