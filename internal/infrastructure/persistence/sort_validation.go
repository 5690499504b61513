package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort direction to ASC or DESC.
// Returns "ASC" when the input is empty or unrecognized.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField checks the sort field against a whitelist of allowed
// columns. Returns the defaultField when the input is empty or not allowed,
// so no caller-controlled string ever reaches an ORDER BY clause raw.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// ProductSortFields contains allowed sort columns for price-list entries
var ProductSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"name":           true,
	"manufacturer":   true,
	"group_name":     true,
	"unit":           true,
	"retail_price":   true,
	"purchase_price": true,
	"selling_price":  true,
}

// ProjectSortFields contains allowed sort columns for projects
var ProjectSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"name":          true,
	"customer_name": true,
	"status":        true,
}
