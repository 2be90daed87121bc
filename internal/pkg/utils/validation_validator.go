package utils

import (
	"hms-console/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("staff_position", validateStaffPosition)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateStaffPosition(fl validator.FieldLevel) bool {
	_, ok := CanonicalPosition(fl.Field().String())
	return ok
}

// CanonicalPosition maps a case-insensitive position to Doctor or Nurse.
func CanonicalPosition(position string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(position)) {
	case "doctor":
		return constvars.PositionDoctor, true
	case "nurse":
		return constvars.PositionNurse, true
	default:
		return "", false
	}
}
