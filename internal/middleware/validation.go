package middleware

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/interconnect/backend/internal/app/models"
)

var registerOnce sync.Once

// RegisterValidators teaches gin's validator the domain enums and makes it
// report JSON field names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(jsonFieldName)

		_ = v.RegisterValidation("user_role", func(fl validator.FieldLevel) bool {
			return models.Role(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("internship_status", func(fl validator.FieldLevel) bool {
			return models.InternshipStatus(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("application_status", func(fl validator.FieldLevel) bool {
			return models.ApplicationStatus(fl.Field().String()).Valid()
		})
	})
}

func jsonFieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
