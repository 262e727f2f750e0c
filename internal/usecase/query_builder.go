package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/projectcart/backend/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	nonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9\s]`)
	multipleSpacesRegex  = regexp.MustCompile(`\s+`)
)

// BuildSearchQuery builds the shopping-search query for one checklist item.
// The shared notes modifier narrows results (e.g. "weather resistant"), and
// the "buy online" suffix biases the provider toward purchasable listings.
func BuildSearchQuery(item domain.ChecklistItem, notes string) string {
	query := item.Name + " " + notes + " buy online"
	query = multipleSpacesRegex.ReplaceAllString(query, " ")
	return strings.TrimSpace(query)
}

// offerCacheKey creates a normalized cache key for a search query.
// Format: "offers:{normalized_query}"
func offerCacheKey(query string) string {
	return fmt.Sprintf("offers:%s", normalizeForCacheKey(query))
}

// normalizeForCacheKey normalizes a string for use as cache key component.
// Converts to lowercase, removes special characters, and trims whitespace.
func normalizeForCacheKey(s string) string {
	if s == "" {
		return ""
	}
	result := strings.ToLower(s)
	result = nonAlphanumericRegex.ReplaceAllString(result, "")
	result = multipleSpacesRegex.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
