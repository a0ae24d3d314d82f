package student

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/trezcool/darasa/core"
)

var (
	digitsTag   = "digits"
	digitsText  = "only digits are allowed"
	digitsRegex = regexp.MustCompile(`^[0-9]+$`)
)

func init() {
	// register validators
	_ = core.Validate.RegisterValidation(digitsTag, digitsValidation)
	core.RegisterCustomTranslation(digitsTag, digitsText)
}

// digitsValidation only allows mobile numbers made of digits.
func digitsValidation(fl validator.FieldLevel) bool {
	return digitsRegex.MatchString(fl.Field().String())
}
