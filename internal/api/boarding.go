package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velvetleash/server/internal/models"
)

type boardingPayload struct {
	ID                  uint   `json:"id"`
	UserID              uint   `json:"userId"`
	SitterID            *uint  `json:"sitterId"`
	PetID               *uint  `json:"petId"`
	DogSize             string `json:"dogSize"`
	DogAge              string `json:"dogAge"`
	GetAlongWithDogs    string `json:"getAlongWithDogs"`
	GetAlongWithCats    string `json:"getAlongWithCats"`
	StartDate           string `json:"startDate" binding:"required"`
	EndDate             string `json:"endDate" binding:"required"`
	SpecialInstructions string `json:"specialInstructions"`
	Status              string `json:"status" binding:"omitempty,boardingstatus"`
}

func (p boardingPayload) toModel() (*models.BoardingRequest, error) {
	window, err := models.ParseDateRange(p.StartDate, p.EndDate)
	if err != nil {
		return nil, err
	}
	return &models.BoardingRequest{
		ID:                  p.ID,
		UserID:              p.UserID,
		SitterID:            p.SitterID,
		PetID:               p.PetID,
		DogSize:             p.DogSize,
		DogAge:              p.DogAge,
		GetAlongWithDogs:    p.GetAlongWithDogs,
		GetAlongWithCats:    p.GetAlongWithCats,
		StartDate:           window.Start,
		EndDate:             window.End,
		SpecialInstructions: p.SpecialInstructions,
		Status:              models.BoardingStatus(p.Status),
	}, nil
}

type statusPayload struct {
	Status string `json:"status" binding:"required,boardingstatus"`
}

func (h *Handler) GetBoardingRequests(c *gin.Context) {
	userID, valid := optionalUint(c, "userId")
	if !valid {
		return
	}

	requests, err := h.boarding.List(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Boarding request", "get boarding requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) GetBoardingRequest(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	req, err := h.boarding.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Boarding request", "get boarding request")
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *Handler) CreateBoardingRequest(c *gin.Context) {
	var p boardingPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.bindingError(c, err)
		return
	}

	req, err := p.toModel()
	if err != nil {
		h.respondError(c, err, "Boarding request", "save boarding request")
		return
	}
	if err := h.boarding.Create(c.Request.Context(), req); err != nil {
		h.respondError(c, err, "Boarding request", "save boarding request")
		return
	}

	okMessage(c, "Boarding request saved", gin.H{
		"requestId":  req.ID,
		"status":     req.Status,
		"totalPrice": req.TotalPrice,
	})
}

func (h *Handler) UpdateBoardingRequest(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	var p boardingPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.bindingError(c, err)
		return
	}
	if p.ID != id {
		fail(c, http.StatusBadRequest, "ID mismatch")
		return
	}

	input, err := p.toModel()
	if err != nil {
		h.respondError(c, err, "Boarding request", "update boarding request")
		return
	}
	updated, err := h.boarding.Update(c.Request.Context(), id, input)
	if err != nil {
		h.respondError(c, err, "Boarding request", "update boarding request")
		return
	}
	okMessage(c, "Boarding request updated", updated)
}

func (h *Handler) UpdateBoardingStatus(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	var p statusPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.bindingError(c, err)
		return
	}

	updated, err := h.boarding.UpdateStatus(c.Request.Context(), id, p.Status)
	if err != nil {
		h.respondError(c, err, "Boarding request", "update boarding status")
		return
	}
	okMessage(c, "Status updated successfully", updated)
}

func (h *Handler) DeleteBoardingRequest(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	if err := h.boarding.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Boarding request", "delete boarding request")
		return
	}
	okMessage(c, "Boarding request deleted", nil)
}
