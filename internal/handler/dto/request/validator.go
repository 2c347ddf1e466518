package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"clinic-booking/internal/domain/appointment"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RegisterValidators adds the clinic's format tags to gin's binding engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	v.RegisterTagNameFunc(fieldName)
	if err := v.RegisterValidation("clinic_date", validateClinicDate); err != nil {
		return fmt.Errorf("register clinic_date: %w", err)
	}
	if err := v.RegisterValidation("clinic_slot", validateClinicSlot); err != nil {
		return fmt.Errorf("register clinic_slot: %w", err)
	}
	return nil
}

// fieldName reports fields by their wire name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

func validateClinicDate(fl validator.FieldLevel) bool {
	_, err := appointment.ParseDate(fl.Field().String())
	return err == nil
}

func validateClinicSlot(fl validator.FieldLevel) bool {
	_, err := appointment.ParseSlot(fl.Field().String())
	return err == nil
}

// Details lists one entry per failed field, or nil when err is not a
// validation failure (malformed JSON, wrong types).
func Details(err error) []FieldError {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil
	}
	out := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "clinic_date":
		return "must be a date in YYYY-MM-DD format"
	case "clinic_slot":
		return "must be one of the clinic slots (08:00 to 18:00, on the hour)"
	case "max":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	default:
		return "is invalid"
	}
}
