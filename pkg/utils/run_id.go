package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// GenerateRunID creates a readable, unique simulation run ID.
// Format: {slug}-{8charHexUUID}
//
// Example:
//   - Input: "Green Thumb Nursery"
//   - Output: "green-thumb-nursery-a3f8e2b1"
func GenerateRunID(greenhouseName string) string {
	slug := slugify(greenhouseName)
	if slug == "" {
		slug = "run"
	}
	return slug + "-" + generateShortUUID()
}

// slugify lower-cases a name and joins its letter and digit runs with hyphens
func slugify(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}

// generateShortUUID creates an 8-character hex string from a UUID
func generateShortUUID() string {
	id := uuid.New()
	return strings.ReplaceAll(id.String(), "-", "")[:8]
}
