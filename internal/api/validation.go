package api

import (
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"velvetleash/server/internal/models"
)

var (
	zipCodePattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	registerOnce   sync.Once
	registerErr    error
)

func validZipCode(fl validator.FieldLevel) bool {
	return zipCodePattern.MatchString(fl.Field().String())
}

func validBoardingStatus(fl validator.FieldLevel) bool {
	_, err := models.ParseBoardingStatus(fl.Field().String())
	return err == nil
}

// RegisterValidators adds the zipcode and boardingstatus tags to gin's binding validator.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if registerErr = v.RegisterValidation("zipcode", validZipCode); registerErr != nil {
			return
		}
		registerErr = v.RegisterValidation("boardingstatus", validBoardingStatus)
	})
	return registerErr
}
