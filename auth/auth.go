// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
	"regexp"

	"github.com/google/uuid"
)

var (
	ErrInvalidAdminKey = errors.New("invalid admin key")
	ErrInvalidSlug     = errors.New("invalid slug")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// GenerateID creates a random UUIDv4 string for database records
func GenerateID() string {
	return uuid.NewString()
}

// ValidateID checks that id is a well-formed UUID
func ValidateID(id string) error {
	_, err := uuid.Parse(id)
	return err
}

// ValidateAdminKey compares the provided key against the configured one
// in constant time. An empty configured key never validates.
func ValidateAdminKey(provided, expected string) error {
	if expected == "" || !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// ValidateSlug checks a section id: lowercase alphanumerics, '-' and '_'
func ValidateSlug(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}
	return nil
}
