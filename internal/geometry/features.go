package geometry

import (
	"github.com/paulmach/orb/geojson"

	"velvetleash/server/internal/models"
)

// SitterFeatures renders ranked sitters as a GeoJSON FeatureCollection, one point per sitter.
func SitterFeatures(ranked []models.RankedSitter) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, r := range ranked {
		feature := geojson.NewFeature(NewPoint(r.Sitter.Latitude, r.Sitter.Longitude))
		feature.ID = r.Sitter.ID
		feature.Properties = geojson.Properties{
			"name":          r.Sitter.Name,
			"zipCode":       r.Sitter.ZipCode,
			"pricePerNight": r.Sitter.PricePerNight,
			"rating":        r.Sitter.Rating,
			"acceptsDogs":   r.Sitter.AcceptsDogs,
			"acceptsCats":   r.Sitter.AcceptsCats,
			"distanceKm":    r.DistanceKm,
		}
		fc.Append(feature)
	}
	return fc
}
