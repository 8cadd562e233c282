package database

import (
	"context"
	"fmt"
	"time"

	"velvetleash/server/internal/models"
	"velvetleash/server/internal/pricing"
	"velvetleash/server/internal/security"
)

const seedPassword = "Password123!"

// Seed fills an empty database with demo users, sitters, pets and one request.
// It reports whether anything was inserted.
func (d *Database) Seed(ctx context.Context, now time.Time) (bool, error) {
	count, err := d.CountUsers(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	hash, err := security.HashPassword(seedPassword)
	if err != nil {
		return false, err
	}

	err = d.Transaction(ctx, func(tx *Database) error {
		users := []models.User{
			{Username: "john.doe@example.com", Email: "john.doe@example.com", PasswordHash: hash, FirstName: "John", LastName: "Doe",
				ZipCode: "90210", HowDidYouHear: "Friend", IsEmailVerified: true, ProfileImage: "https://randomuser.me/api/portraits/men/22.jpg"},
			{Username: "jane.smith@example.com", Email: "jane.smith@example.com", PasswordHash: hash, FirstName: "Jane", LastName: "Smith",
				ZipCode: "10001", HowDidYouHear: "Google", IsEmailVerified: true},
		}
		for i := range users {
			if err := tx.CreateUser(ctx, &users[i]); err != nil {
				return err
			}
		}

		sitters := []models.Sitter{
			{Name: "Alice Johnson", Location: "Beverly Hills, CA", ZipCode: "90210", Rating: 4.8,
				Bio:         "Experienced pet sitter with over 5 years of experience. I love all animals and will treat your pets like my own.",
				IsAvailable: true, PricePerNight: 50, AcceptsDogs: true, AcceptsCats: true, Latitude: 34.0736, Longitude: -118.4004,
				ProfileImage: "https://randomuser.me/api/portraits/women/44.jpg"},
			{Name: "Bob Williams", Location: "Manhattan, NY", ZipCode: "10001", Rating: 4.9,
				Bio:         "Professional dog trainer and pet sitter. I have a spacious apartment with a small yard where your pets can play.",
				IsAvailable: true, PricePerNight: 65, AcceptsDogs: true, AcceptsCats: false, Latitude: 40.7505, Longitude: -73.9934,
				ProfileImage: "https://randomuser.me/api/portraits/men/32.jpg"},
			{Name: "Carol Martinez", Location: "Los Angeles, CA", ZipCode: "90001", Rating: 4.7,
				Bio:         "Cat specialist with a quiet, calm home perfect for shy or elderly cats. I also accept small dogs.",
				IsAvailable: true, PricePerNight: 45, AcceptsDogs: true, AcceptsCats: true, Latitude: 33.9731, Longitude: -118.2479,
				ProfileImage: "https://randomuser.me/api/portraits/women/68.jpg"},
		}
		for i := range sitters {
			if err := tx.CreateSitter(ctx, &sitters[i]); err != nil {
				return err
			}
		}

		pets := []models.Pet{
			{Name: "Max", Type: models.PetTypeDog, Size: models.PetSizeMedium, Age: models.PetAgeAdult,
				GetAlongWithDogs: true, IsUnsureWithCats: true, SpecialInstructions: "Needs medication twice daily",
				MedicalConditions: "Mild arthritis", UserID: users[0].ID},
			{Name: "Bella", Type: models.PetTypeCat, Size: models.PetSizeSmall, Age: models.PetAgePuppyKitten,
				GetAlongWithCats: true, IsUnsureWithDogs: true, SpecialInstructions: "Very shy, needs quiet environment",
				MedicalConditions: "None", UserID: users[1].ID},
		}
		for i := range pets {
			if err := tx.CreatePet(ctx, &pets[i]); err != nil {
				return err
			}
		}

		request := models.BoardingRequest{
			DogSize:             "Medium",
			DogAge:              "Adult",
			GetAlongWithDogs:    "Yes",
			GetAlongWithCats:    "No",
			StartDate:           models.Date(now.AddDate(0, 0, 7)),
			EndDate:             models.Date(now.AddDate(0, 0, 14)),
			SpecialInstructions: "Please follow medication schedule",
			UserID:              users[0].ID,
			SitterID:            &sitters[0].ID,
			PetID:               &pets[0].ID,
			Status:              models.StatusPending,
		}
		if err := pricing.Apply(&request, &sitters[0]); err != nil {
			return err
		}
		return tx.CreateBoardingRequest(ctx, &request)
	})
	if err != nil {
		return false, fmt.Errorf("failed to seed database: %w", err)
	}
	return true, nil
}
