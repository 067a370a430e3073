package apperror

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

func Init() {
	// Register custom hooks on gin's built-in validator.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			// Report fields by their json name (e.g. `json:"phone_number"`).
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	}
}

// Validate runs the gin binding validator (`binding` tags) over a struct that
// did not come straight from a request body.
func Validate(obj any) error {
	if err := binding.Validator.ValidateStruct(obj); err != nil {
		return MapValidationError(err)
	}
	return nil
}
