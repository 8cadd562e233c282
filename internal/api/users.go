package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"velvetleash/server/internal/service"
)

type registerPayload struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ZipCode       string `json:"zipCode" binding:"omitempty,zipcode"`
	HowDidYouHear string `json:"howDidYouHear"`
}

type profilePayload struct {
	UserID       uint   `json:"userId" binding:"required"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	ZipCode      string `json:"zipCode" binding:"omitempty,zipcode"`
	ProfileImage string `json:"profileImage"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var p registerPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.bindingError(c, err)
		return
	}

	user, err := h.users.Register(c.Request.Context(), service.Registration{
		Email:         p.Email,
		Password:      p.Password,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		ZipCode:       p.ZipCode,
		HowDidYouHear: p.HowDidYouHear,
	})
	if err != nil {
		h.respondError(c, err, "User", "register user")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully", "data": user})
}

func (h *Handler) GetUser(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "User", "get user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handler) GetUserPets(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	pets, err := h.users.Pets(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "User", "get user pets")
		return
	}
	c.JSON(http.StatusOK, pets)
}

func (h *Handler) UpdateUserProfile(c *gin.Context) {
	var p profilePayload
	if err := c.ShouldBindJSON(&p); err != nil {
		h.bindingError(c, err)
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), service.ProfileUpdate{
		UserID:       p.UserID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		ZipCode:      p.ZipCode,
		ProfileImage: p.ProfileImage,
	})
	if err != nil {
		h.respondError(c, err, "User", "update profile")
		return
	}
	okMessage(c, "Profile updated successfully", gin.H{"user": user})
}
