package database

import (
	"context"
	"fmt"

	"gorm.io/gorm/clause"

	"velvetleash/server/internal/models"
)

// ListPets returns pets ordered by name, optionally for one owner.
func (d *Database) ListPets(ctx context.Context, userID *uint) ([]models.Pet, error) {
	query := d.db.WithContext(ctx).Order("name").Order("id")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var pets []models.Pet
	if err := query.Find(&pets).Error; err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

func (d *Database) GetPet(ctx context.Context, id uint) (*models.Pet, error) {
	var pet models.Pet
	if err := first(d.db.WithContext(ctx), &pet, "pet", id); err != nil {
		return nil, err
	}
	return &pet, nil
}

func (d *Database) CreatePet(ctx context.Context, pet *models.Pet) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Create(pet).Error; err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

func (d *Database) UpdatePet(ctx context.Context, pet *models.Pet) error {
	if err := d.db.WithContext(ctx).Omit(clause.Associations).Save(pet).Error; err != nil {
		return fmt.Errorf("failed to update pet %d: %w", pet.ID, err)
	}
	return nil
}

func (d *Database) DeletePet(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&models.Pet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete pet %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound("pet", id)
	}
	return nil
}
