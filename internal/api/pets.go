package api

import (
	"github.com/gin-gonic/gin"

	"velvetleash/server/internal/models"
)

func (h *Handler) GetPets(c *gin.Context) {
	userID, valid := optionalUint(c, "userId")
	if !valid {
		return
	}

	pets, err := h.pets.List(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "Pet", "get pets")
		return
	}
	ok(c, pets)
}

func (h *Handler) GetPet(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	pet, err := h.pets.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Pet", "get pet")
		return
	}
	ok(c, pet)
}

func (h *Handler) GetPetsByUser(c *gin.Context) {
	userID, valid := parseID(c, "userId")
	if !valid {
		return
	}

	pets, err := h.pets.List(c.Request.Context(), &userID)
	if err != nil {
		h.respondError(c, err, "Pet", "get pets")
		return
	}
	ok(c, pets)
}

func (h *Handler) CreatePet(c *gin.Context) {
	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		h.bindingError(c, err)
		return
	}

	if err := h.pets.Create(c.Request.Context(), &pet); err != nil {
		h.respondError(c, err, "Pet", "create pet")
		return
	}
	okMessage(c, "Pet created successfully", pet)
}

func (h *Handler) UpdatePet(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	var pet models.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		h.bindingError(c, err)
		return
	}

	if err := h.pets.Update(c.Request.Context(), id, &pet); err != nil {
		h.respondError(c, err, "Pet", "update pet")
		return
	}
	okMessage(c, "Pet updated successfully", pet)
}

func (h *Handler) DeletePet(c *gin.Context) {
	id, valid := parseID(c, "id")
	if !valid {
		return
	}

	if err := h.pets.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Pet", "delete pet")
		return
	}
	okMessage(c, "Pet deleted successfully", nil)
}

func (h *Handler) GetPetTypes(c *gin.Context) { ok(c, models.PetTypes()) }
func (h *Handler) GetPetSizes(c *gin.Context) { ok(c, models.PetSizes()) }
func (h *Handler) GetPetAges(c *gin.Context)  { ok(c, models.PetAges()) }
