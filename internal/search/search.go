package search

import "velvetleash/server/internal/models"

// Apply runs the attribute and availability stages of f over sitters.
// The result only contains sitters marked available, in input order.
func Apply(f SitterFilter, sitters []models.Sitter, bookings []models.BoardingRequest) []models.Sitter {
	candidates := FilterByAttributes(f, sitters)
	if window, ok := f.Window(); ok {
		return FilterAvailable(candidates, window, bookings)
	}
	return OnlyAvailable(candidates)
}
