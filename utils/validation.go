package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldMessages maps JSON field names to the message returned when that
// field fails validation.
type FieldMessages map[string]string

// Field errors must carry the JSON name of the field, not the Go struct
// field name, so the messages map can be keyed the way clients see fields.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// HandleValidationErrors turns a binding error into the shared 400 response:
// {"message": "Bad Request", "errors": {field: message}}.
func HandleValidationErrors(c *gin.Context, err error, messages FieldMessages) {
	fieldErrors := gin.H{}

	var vErrs validator.ValidationErrors
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &vErrs):
		for _, fe := range vErrs {
			name := fe.Field()
			if msg, ok := messages[name]; ok {
				fieldErrors[name] = msg
			} else {
				fieldErrors[name] = name + " is invalid"
			}
		}
	case errors.As(err, &typeErr):
		// Wrong JSON type, e.g. a string where a number is expected.
		name := typeErr.Field
		if msg, ok := messages[name]; ok {
			fieldErrors[name] = msg
		} else {
			fieldErrors[name] = name + " is invalid"
		}
	default:
		fieldErrors["body"] = "Invalid request body"
	}

	c.JSON(http.StatusBadRequest, gin.H{
		"message": "Bad Request",
		"errors":  fieldErrors,
	})
}
