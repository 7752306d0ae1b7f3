package utils

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

var ErrorMalformedBody = errors.New("malformed request body")

// ProcessValidationErrors maps each failing field to the tag it failed on.
// Decode errors that are not validator errors are reported under "body"
// or under the offending JSON field.
func ProcessValidationErrors(err error) map[string]string {
	errorResponse := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, ve := range validationErrors {
			errorResponse[ve.Field()] = ve.Tag()
		}
		return errorResponse
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		errorResponse[typeErr.Field] = "type"
		return errorResponse
	}

	errorResponse["body"] = ErrorMalformedBody.Error()
	return errorResponse
}
