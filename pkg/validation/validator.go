package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// routestyle matches the recognized edge style tags.
	_ = validate.RegisterValidation("routestyle", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "direct", "safe", "fast", "stealth":
			return true
		}
		return false
	})
}

// ValidateStruct runs struct-tag validation and flattens the failures into a
// single readable error.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return fmt.Errorf("validation failed: %w", err)
	}

	msgs := make([]string, 0, len(invalid))
	for _, fe := range invalid {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q constraint", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
