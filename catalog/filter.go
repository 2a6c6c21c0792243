// Package catalog implements the in-memory search over the vendor fixture.
package catalog

import (
	"strings"

	"tent-on-rent-api/models"
)

// Filter returns the vendors visible for a location and free-text search
// term, preserving catalog order.
//
// Location matching is an exact, case-sensitive string comparison; a
// location with no vendors yields an empty result, which is not an error.
// The term is matched as a case-insensitive substring against the vendor's
// name, description and location and against every item's name and
// description. A blank term keeps the location-filtered set unchanged.
func Filter(vendors []models.Vendor, location, term string) []models.Vendor {
	var byLocation []models.Vendor
	for _, v := range vendors {
		if v.Location == location {
			byLocation = append(byLocation, v)
		}
	}

	if strings.TrimSpace(term) == "" {
		return byLocation
	}

	search := strings.ToLower(term)
	var filtered []models.Vendor
	for _, v := range byLocation {
		if vendorMatches(v, search) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func vendorMatches(v models.Vendor, search string) bool {
	if strings.Contains(strings.ToLower(v.Name), search) ||
		strings.Contains(strings.ToLower(v.Description), search) ||
		strings.Contains(strings.ToLower(v.Location), search) {
		return true
	}
	for _, item := range v.Items {
		if strings.Contains(strings.ToLower(item.Name), search) ||
			strings.Contains(strings.ToLower(item.Description), search) {
			return true
		}
	}
	return false
}

// FindVendor looks a vendor up by id. The second return is false when the
// id is absent from the catalog; the details screen renders that as a
// local not-found view.
func FindVendor(vendors []models.Vendor, id uint) (models.Vendor, bool) {
	for _, v := range vendors {
		if v.ID == id {
			return v, true
		}
	}
	return models.Vendor{}, false
}

// FilterCities returns the supported cities whose names contain the term,
// case-insensitively. A blank term yields nothing — the location picker
// shows popular cities instead of search results in that case.
func FilterCities(cities []string, term string) []string {
	if strings.TrimSpace(term) == "" {
		return nil
	}
	search := strings.ToLower(term)
	var matched []string
	for _, c := range cities {
		if strings.Contains(strings.ToLower(c), search) {
			matched = append(matched, c)
		}
	}
	return matched
}
