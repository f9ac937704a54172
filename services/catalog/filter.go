package catalog

import (
	"strconv"
	"strings"

	"quickcowork/models"
)

// ApplyCriteria runs the full browse pipeline over the given spaces:
// type, location, price bounds, amenities and free-text filters in order,
// then the selected sort. It is a pure function; identical inputs yield
// identical output.
func ApplyCriteria(spaces []models.Space, criteria models.FilterCriteria) []models.Space {
	filtered := make([]models.Space, 0, len(spaces))
	for _, space := range spaces {
		if matchesCriteria(space, criteria) {
			filtered = append(filtered, space)
		}
	}
	sortSpaces(filtered, criteria.SortBy)
	return filtered
}

func matchesCriteria(space models.Space, criteria models.FilterCriteria) bool {
	if criteria.Type != "" && criteria.Type != models.SpaceTypeAll && space.Type != criteria.Type {
		return false
	}

	if criteria.Location != "" && !containsFold(space.Location, criteria.Location) {
		return false
	}

	if min, ok := parseBound(criteria.MinPrice); ok && space.Price < min {
		return false
	}
	if max, ok := parseBound(criteria.MaxPrice); ok && space.Price > max {
		return false
	}

	// Every requested amenity must be present.
	for _, amenity := range criteria.Amenities {
		if !space.HasAmenity(amenity) {
			return false
		}
	}

	if q := criteria.SearchQuery; q != "" {
		if !containsFold(space.Title, q) &&
			!containsFold(space.Location, q) &&
			!containsFold(space.Description, q) {
			return false
		}
	}

	return true
}

// parseBound parses a price bound from its raw request string. Malformed
// or empty input means the bound is unset, never an error.
func parseBound(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
