// Package validator checks request structs against their validate tags.
// Failures come back as one error listing every offending field, so a client
// can fix a bad form in a single round trip.
package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FieldError is one failed rule on one field
type FieldError struct {
	Field string
	Tag   string
	Param string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("field '%s' failed on tag '%s'", e.Field, e.Tag)
}

// FieldErrors aggregates every failed field of one struct
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

var validate = validator.New()

func init() {
	// uuid.Nil passes validator's zero-value checks, so "required" alone
	// does not catch a missing UUID field
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		if id, ok := fl.Field().Interface().(uuid.UUID); ok {
			return id != uuid.Nil
		}
		return false
	})
}

// ValidateStruct returns nil when data passes its validate tags, or a
// FieldErrors covering every failed field.
func ValidateStruct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrors FieldErrors
	for _, fe := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, FieldError{
			Field: fe.StructNamespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return fieldErrors
}
