package api

import (
	"github.com/gin-gonic/gin"
)

type coordinatesQuery struct {
	Latitude  *float64 `form:"latitude" json:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" json:"longitude" binding:"required,min=-180,max=180"`
	RadiusKm  float64  `form:"radiusKm" binding:"omitempty,gt=0"`
}

func (h *Handler) GetZipCodes(c *gin.Context) {
	ok(c, h.locations.SearchZipCodes(c.Query("search")))
}

func (h *Handler) GetCoordinates(c *gin.Context) {
	z, err := h.locations.Coordinates(c.Request.Context(), c.Param("zipCode"))
	if err != nil {
		h.respondError(c, err, "Zip code", "look up zip code")
		return
	}
	ok(c, z)
}

func (h *Handler) ReverseGeocode(c *gin.Context) {
	var q coordinatesQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		h.bindingError(c, err)
		return
	}

	nearest, err := h.locations.ReverseGeocode(*q.Latitude, *q.Longitude)
	if err != nil {
		h.respondError(c, err, "Location", "reverse geocode")
		return
	}
	ok(c, gin.H{
		"city":      nearest.City,
		"state":     nearest.State,
		"zipCode":   nearest.ZipCode.ZipCode,
		"country":   "USA",
		"latitude":  *q.Latitude,
		"longitude": *q.Longitude,
		"distance":  nearest.Distance,
	})
}

func (h *Handler) GetNearbyCities(c *gin.Context) {
	var q coordinatesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindingError(c, err)
		return
	}

	cities, err := h.locations.NearbyCities(*q.Latitude, *q.Longitude, q.RadiusKm)
	if err != nil {
		h.respondError(c, err, "Location", "find nearby cities")
		return
	}
	ok(c, cities)
}

func (h *Handler) GetStates(c *gin.Context) {
	ok(c, h.locations.States())
}
