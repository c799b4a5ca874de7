// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package seed loads sections and items from a YAML file.

	sections:
	  - id: home-banners
	    title: Home Banners
	    kind: banner
	    items:
	      - title: Summer Sale
	        link_url: https://example.com/sale
	      - title: Old Promo
	        active: false

Items get display_order 0, 1, 2... in file order. Apply skips sections that
already exist, so the same file can be applied on every start:

	file, err := seed.Load(cfg.SeedFile)
	res, err := seed.Apply(ctx, conn, file)
*/
package seed
