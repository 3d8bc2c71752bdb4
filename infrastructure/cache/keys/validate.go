// ABOUTME: Key and value validation shared by the SQL-backed cache substrates
// ABOUTME: Queries are always parameterized; these checks only bound sizes and bytes

package keys

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxKeyLength fits a "feed:" prefix plus a long feed URL with query string
	MaxKeyLength = 2048

	// MaxValueLength bounds a stored parse result
	MaxValueLength = 8 << 20
)

var (
	ErrEmptyKey   = errors.New("key cannot be empty")
	ErrEmptyValue = errors.New("value cannot be empty")
)

// Validate rejects keys SQL substrates cannot store faithfully
func Validate(key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	if len(key) > MaxKeyLength {
		return fmt.Errorf("key too long: max %d characters", MaxKeyLength)
	}

	// Check for null bytes which can cause issues
	if strings.Contains(key, "\x00") {
		return errors.New("key cannot contain null bytes")
	}

	return nil
}

// ValidateValue validates cache value
func ValidateValue(value []byte) error {
	if len(value) == 0 {
		return ErrEmptyValue
	}

	if len(value) > MaxValueLength {
		return fmt.Errorf("value too large: max %d bytes", MaxValueLength)
	}

	return nil
}

// Preview returns a log-safe prefix of key
func Preview(key string) string {
	const maxPreview = 50
	if len(key) <= maxPreview {
		return key
	}
	return key[:maxPreview] + "..."
}
