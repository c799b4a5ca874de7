// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package seed

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/orderdesk/auth"
	"github.com/danielhkuo/orderdesk/models"
)

var ErrInvalidSeed = errors.New("invalid seed")

// File is the YAML seed layout
type File struct {
	Sections []Section `yaml:"sections"`
}

type Section struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Kind  string `yaml:"kind"`
	Items []Item `yaml:"items"`
}

type Item struct {
	Title   string `yaml:"title"`
	Body    string `yaml:"body"`
	LinkURL string `yaml:"link_url"`
	Active  *bool  `yaml:"active"`
}

// Result counts what Apply inserted
type Result struct {
	SectionsCreated int
	SectionsSkipped int
	ItemsCreated    int
}

// Load reads and validates a seed file
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes and validates a seed document
func Parse(r io.Reader) (*File, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode seed: %w", err)
	}
	if err := file.Validate(); err != nil {
		return nil, err
	}
	return &file, nil
}

// Validate checks ids, kinds and titles
func (f *File) Validate() error {
	seen := make(map[string]bool, len(f.Sections))
	for i, s := range f.Sections {
		if err := auth.ValidateSlug(s.ID); err != nil {
			return fmt.Errorf("%w: sections[%d].id %q is not a slug", ErrInvalidSeed, i, s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("%w: duplicate section %q", ErrInvalidSeed, s.ID)
		}
		seen[s.ID] = true
		if s.Title == "" {
			return fmt.Errorf("%w: section %q has no title", ErrInvalidSeed, s.ID)
		}
		if !models.ValidKind(s.Kind) {
			return fmt.Errorf("%w: section %q has unknown kind %q", ErrInvalidSeed, s.ID, s.Kind)
		}
		for j, it := range s.Items {
			if it.Title == "" {
				return fmt.Errorf("%w: section %q items[%d] has no title", ErrInvalidSeed, s.ID, j)
			}
		}
	}
	return nil
}

// Apply inserts every section that does not exist yet, with its items in
// file order. Existing sections are left alone, so Apply can run on every
// startup.
func Apply(ctx context.Context, db *sql.DB, file *File) (Result, error) {
	var res Result

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return res, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, s := range file.Sections {
		var one int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM section WHERE id = $1", s.ID).Scan(&one)
		if err == nil {
			res.SectionsSkipped++
			continue
		}
		if err != sql.ErrNoRows {
			return Result{}, fmt.Errorf("failed to query section %s: %w", s.ID, err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO section (id, title, kind, created_at)
			VALUES ($1, $2, $3, $4)
		`, s.ID, s.Title, s.Kind, now)
		if err != nil {
			return Result{}, fmt.Errorf("failed to insert section %s: %w", s.ID, err)
		}
		res.SectionsCreated++

		for pos, it := range s.Items {
			active := true
			if it.Active != nil {
				active = *it.Active
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO item (id, section_id, title, body, link_url, active, display_order, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			`, auth.GenerateID(), s.ID, it.Title, it.Body, it.LinkURL, active, pos, now, now)
			if err != nil {
				return Result{}, fmt.Errorf("failed to insert item %q in %s: %w", it.Title, s.ID, err)
			}
			res.ItemsCreated++
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("failed to commit seed: %w", err)
	}
	return res, nil
}
