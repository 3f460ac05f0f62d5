// validators.go - Custom binding rules for listing input

package handlers

import (
	"slices"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-cafe-backend/models"
)

var ratingScales = map[string][]string{
	"coffee": models.CoffeeRatings,
	"wifi":   models.WifiRatings,
	"power":  models.PowerRatings,
}

// RegisterValidators installs the `rating=<scale>` rule on gin's binding
// validator. Call once before the router handles requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("rating", func(fl validator.FieldLevel) bool {
		scale, ok := ratingScales[fl.Param()]
		if !ok {
			return false
		}
		return slices.Contains(scale, fl.Field().String())
	})
}
