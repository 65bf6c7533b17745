// Package validator wraps go-playground/validator with the project's
// custom rules. Domain rule tables consume Var to evaluate one field at a
// time, which keeps the first-failure-wins contract of the inquiry form.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

// emailShapeRe is the canonical email pattern for both the client and the
// server rule sets: local part, at least one dotted domain label, 2-4
// character TLD, no whitespace.
var emailShapeRe = regexp.MustCompile(`^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// emailshape: the project-wide email pattern (stricter than the
	// built-in "email" tag about TLD length, matching the form contract).
	_ = validate.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return emailShapeRe.MatchString(fl.Field().String())
	})
}

// Validate runs struct-level validation using go-playground/validator tags.
func Validate(s any) error {
	return validate.Struct(s)
}

// Var validates a single value against a tag expression, e.g.
// Var(email, "required,emailshape,max=100").
func Var(value any, tag string) error {
	return validate.Var(value, tag)
}
