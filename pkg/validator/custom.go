package validator

import (
	"wasteCollect/pkg/geo"

	"github.com/go-playground/validator/v10"
)

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("coord_lat", validateCoordLat)
	validate.RegisterValidation("coord_lng", validateCoordLng)
}

// coordinates travel as decimal-degree strings
func validateCoordLat(fl validator.FieldLevel) bool {
	_, err := geo.ParseCoordinate(fl.Field().String(), geo.Latitude)
	return err == nil
}

func validateCoordLng(fl validator.FieldLevel) bool {
	_, err := geo.ParseCoordinate(fl.Field().String(), geo.Longitude)
	return err == nil
}
