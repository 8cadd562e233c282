// Package pricing computes boarding totals from a sitter's nightly rate.
package pricing

import (
	"fmt"
	"time"

	"velvetleash/server/internal/models"
)

// Total returns pricePerNight times the inclusive day count of r.
func Total(pricePerNight float64, r models.DateRange) (float64, error) {
	days := r.Days()
	if days < 1 {
		return 0, fmt.Errorf("%w: %s", models.ErrInvalidRange, r)
	}
	if pricePerNight < 0 {
		return 0, fmt.Errorf("%w: negative nightly price %.2f", models.ErrInvalidInput, pricePerNight)
	}
	return pricePerNight * float64(days), nil
}

// Calculate validates start/end before pricing them.
func Calculate(pricePerNight float64, start, end time.Time) (float64, error) {
	r, err := models.NewDateRange(start, end)
	if err != nil {
		return 0, err
	}
	return Total(pricePerNight, r)
}

// Apply sets req.TotalPrice from the sitter's rate. Requests without a sitter keep their total.
func Apply(req *models.BoardingRequest, sitter *models.Sitter) error {
	if sitter == nil {
		return nil
	}
	total, err := Calculate(sitter.PricePerNight, req.StartDate, req.EndDate)
	if err != nil {
		return err
	}
	req.TotalPrice = total
	return nil
}
