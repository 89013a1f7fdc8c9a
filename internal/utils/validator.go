// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var hexCodePattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("hex_color_code", validateHexColorCode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateHexColorCode accepts exactly #RRGGBB; the shorthand #RGB form the
// stock hexcolor tag allows is not a valid stored code here.
func validateHexColorCode(fl validator.FieldLevel) bool {
	return hexCodePattern.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	case "gt":
		return e.Field() + " must be greater than " + e.Param()
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "url":
		return e.Field() + " must be a valid URL"
	case "hex_color_code":
		return e.Field() + " must be a hex color code in #RRGGBB form"
	default:
		return e.Field() + " is invalid"
	}
}
