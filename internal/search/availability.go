package search

import "velvetleash/server/internal/models"

// Conflicts reports whether booking holds sitterID's calendar somewhere inside window.
func Conflicts(booking models.BoardingRequest, sitterID uint, window models.DateRange) bool {
	if !booking.HasSitter() || *booking.SitterID != sitterID {
		return false
	}
	if !booking.Status.BlocksAvailability() {
		return false
	}
	return booking.Dates().Overlaps(window)
}

// HasConflict scans bookings for a conflict. excludeRequestID skips one request, 0 skips none.
func HasConflict(bookings []models.BoardingRequest, sitterID uint, window models.DateRange, excludeRequestID uint) bool {
	for _, b := range bookings {
		if excludeRequestID != 0 && b.ID == excludeRequestID {
			continue
		}
		if Conflicts(b, sitterID, window) {
			return true
		}
	}
	return false
}

// IsBookable is true when the sitter is marked available and has no conflict in window.
func IsBookable(s models.Sitter, window models.DateRange, bookings []models.BoardingRequest, excludeRequestID uint) bool {
	return s.IsAvailable && !HasConflict(bookings, s.ID, window, excludeRequestID)
}

// FilterAvailable keeps sitters that are marked available and free for the whole window.
func FilterAvailable(sitters []models.Sitter, window models.DateRange, bookings []models.BoardingRequest) []models.Sitter {
	blocked := make(map[uint]struct{})
	for _, b := range bookings {
		if b.HasSitter() && Conflicts(b, *b.SitterID, window) {
			blocked[*b.SitterID] = struct{}{}
		}
	}

	out := make([]models.Sitter, 0, len(sitters))
	for _, s := range sitters {
		if !s.IsAvailable {
			continue
		}
		if _, ok := blocked[s.ID]; ok {
			continue
		}
		out = append(out, s)
	}
	return out
}

// OnlyAvailable drops sitters with IsAvailable unset.
func OnlyAvailable(sitters []models.Sitter) []models.Sitter {
	out := make([]models.Sitter, 0, len(sitters))
	for _, s := range sitters {
		if s.IsAvailable {
			out = append(out, s)
		}
	}
	return out
}
