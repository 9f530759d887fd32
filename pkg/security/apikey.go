// Package security provides handling of third-party API keys.
package security

import (
	"regexp"
	"strings"
)

var (
	unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	safeKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	omdbKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9]{8}$`)
)

// APIKeyValidator provides validation and masking of API keys
type APIKeyValidator struct {
	minLength int
	maxLength int
}

// NewAPIKeyValidator creates a new API key validator with reasonable defaults
func NewAPIKeyValidator() *APIKeyValidator {
	return &APIKeyValidator{
		minLength: 8,
		maxLength: 128,
	}
}

// ValidateAPIKey validates API key format and length
func (v *APIKeyValidator) ValidateAPIKey(apiKey string) bool {
	if len(apiKey) < v.minLength || len(apiKey) > v.maxLength {
		return false
	}
	return safeKeyPattern.MatchString(apiKey)
}

// SanitizeAPIKey trims whitespace and drops characters that could break out of
// a query parameter.
func (v *APIKeyValidator) SanitizeAPIKey(apiKey string) string {
	return unsafeKeyChars.ReplaceAllString(strings.TrimSpace(apiKey), "")
}

// MaskAPIKey creates a masked version for logging (shows only first/last few chars)
func (v *APIKeyValidator) MaskAPIKey(apiKey string) string {
	if len(apiKey) == 0 {
		return "[empty]"
	}
	if len(apiKey) <= 8 {
		return apiKey[:2] + "***"
	}
	return apiKey[:3] + "..." + apiKey[len(apiKey)-3:]
}

// IsValidOMDbKey reports whether apiKey looks like an OMDb key (8 alphanumerics).
func (v *APIKeyValidator) IsValidOMDbKey(apiKey string) bool {
	return v.ValidateAPIKey(apiKey) && omdbKeyPattern.MatchString(apiKey)
}
