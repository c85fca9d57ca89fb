// Package validation turns struct tag violations into per-field messages.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgErrors "item-api/pkg/errors"
)

// Messages maps "<field>.<tag>" to the message reported for that violation,
// e.g. "name.min" -> "Name cannot be empty".
type Messages map[string]string

// Validator is safe for concurrent use; build one and share it.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator that names fields after their json tag.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return &Validator{v: v}
}

// Struct validates s and returns every violation, or nil when s is valid.
// Fields are not short-circuited: each failing field gets its own entry.
func (v *Validator) Struct(s any, msgs Messages) pkgErrors.FieldErrors {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	fields := pkgErrors.FieldErrors{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields.Add("request", "Request is invalid")
		return fields
	}

	for _, fe := range verrs {
		fields.Add(fe.Field(), message(fe, msgs))
	}
	return fields
}

func message(fe validator.FieldError, msgs Messages) string {
	if msg, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if fe.Param() != "" {
		return fmt.Sprintf("%s failed on %s=%s", fe.Field(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
}
