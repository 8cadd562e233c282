package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velvetleash/server/internal/geometry"
	"velvetleash/server/internal/models"
	"velvetleash/server/internal/search"
)

type sitterQuery struct {
	ZipCode     string   `form:"zipCode"`
	AcceptsDogs *bool    `form:"acceptsDogs"`
	AcceptsCats *bool    `form:"acceptsCats"`
	StartDate   string   `form:"startDate"`
	EndDate     string   `form:"endDate"`
	Latitude    *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude   *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	Radius      float64  `form:"radius" binding:"omitempty,gt=0"`
}

func (q sitterQuery) filter() (search.SitterFilter, error) {
	f := search.NewSitterFilter().WithZipCode(q.ZipCode)
	if q.AcceptsDogs != nil {
		f = f.WithAcceptsDogs(*q.AcceptsDogs)
	}
	if q.AcceptsCats != nil {
		f = f.WithAcceptsCats(*q.AcceptsCats)
	}
	if q.StartDate != "" || q.EndDate != "" {
		window, err := models.ParseDateRange(q.StartDate, q.EndDate)
		if err != nil {
			return f, err
		}
		f = f.WithWindow(window)
	}
	if q.Latitude != nil && q.Longitude != nil {
		f = f.WithOrigin(*q.Latitude, *q.Longitude, q.Radius)
	}
	return f, nil
}

// GetSitters searches available sitters. The reply is a bare array; no match is an empty array.
func (h *Handler) GetSitters(c *gin.Context) {
	var q sitterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindingError(c, err)
		return
	}
	if (q.StartDate == "") != (q.EndDate == "") {
		fail(c, http.StatusBadRequest, "startDate and endDate must be supplied together")
		return
	}

	f, err := q.filter()
	if err != nil {
		h.respondError(c, err, "Sitter", "search sitters")
		return
	}

	sitters, err := h.sitters.Search(c.Request.Context(), f)
	if err != nil {
		h.respondError(c, err, "Sitter", "search sitters")
		return
	}
	c.JSON(http.StatusOK, sitters)
}

type nearbyQuery struct {
	Latitude  *float64 `form:"latitude" binding:"required,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"required,min=-180,max=180"`
	Radius    float64  `form:"radius" binding:"omitempty,gt=0"`
	Format    string   `form:"format" binding:"omitempty,oneof=json geojson"`
}

type nearbySitter struct {
	models.Sitter
	DistanceKm float64 `json:"distanceKm"`
}

// GetNearbySitters ranks available sitters by distance, nearest first.
func (h *Handler) GetNearbySitters(c *gin.Context) {
	var q nearbyQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.bindingError(c, err)
		return
	}

	ranked, err := h.sitters.Nearby(c.Request.Context(), *q.Latitude, *q.Longitude, q.Radius)
	if err != nil {
		h.respondError(c, err, "Sitter", "find nearby sitters")
		return
	}

	if q.Format == "geojson" {
		c.JSON(http.StatusOK, geometry.SitterFeatures(ranked))
		return
	}

	out := make([]nearbySitter, len(ranked))
	for i, r := range ranked {
		out[i] = nearbySitter{Sitter: r.Sitter, DistanceKm: r.DistanceKm}
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) GetSitter(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	sitter, err := h.sitters.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Sitter", "get sitter")
		return
	}
	c.JSON(http.StatusOK, sitter)
}

type sitterPayload struct {
	Name          string  `json:"name" binding:"required"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating" binding:"min=0,max=5"`
	Bio           string  `json:"bio"`
	IsAvailable   *bool   `json:"isAvailable"`
	ProfileImage  string  `json:"profileImage"`
	PricePerNight float64 `json:"pricePerNight" binding:"min=0"`
	AcceptsDogs   *bool   `json:"acceptsDogs"`
	AcceptsCats   *bool   `json:"acceptsCats"`
	ZipCode       string  `json:"zipCode" binding:"omitempty,zipcode"`
	Latitude      float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude     float64 `json:"longitude" binding:"min=-180,max=180"`
}

func boolOrTrue(v *bool) bool {
	return v == nil || *v
}

// toModel fills omitted isAvailable, acceptsDogs and acceptsCats with true.
func (p sitterPayload) toModel() *models.Sitter {
	return &models.Sitter{
		Name:          p.Name,
		Location:      p.Location,
		Rating:        p.Rating,
		Bio:           p.Bio,
		IsAvailable:   boolOrTrue(p.IsAvailable),
		ProfileImage:  p.ProfileImage,
		PricePerNight: p.PricePerNight,
		AcceptsDogs:   boolOrTrue(p.AcceptsDogs),
		AcceptsCats:   boolOrTrue(p.AcceptsCats),
		ZipCode:       p.ZipCode,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
	}
}

func (h *Handler) CreateSitter(c *gin.Context) {
	var p sitterPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.bindingError(c, err)
		return
	}

	sitter := p.toModel()
	if err := h.sitters.Create(c.Request.Context(), sitter); err != nil {
		h.respondError(c, err, "Sitter", "create sitter")
		return
	}
	c.JSON(http.StatusCreated, sitter)
}

func (h *Handler) UpdateSitter(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	var p sitterPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.bindingError(c, err)
		return
	}

	sitter := p.toModel()
	if err := h.sitters.Update(c.Request.Context(), id, sitter); err != nil {
		h.respondError(c, err, "Sitter", "update sitter")
		return
	}
	c.JSON(http.StatusOK, sitter)
}
