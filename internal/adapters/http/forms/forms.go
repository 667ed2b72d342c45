// Package forms defines the typed input schemas for the HTML form surface.
// Fields arrive as untyped key-value pairs; everything is validated and
// coerced here before a query is ever constructed, so malformed input fails
// fast with a client error instead of reaching the store.
package forms

import (
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/quotekeeper/internal/domain"
)

var (
	// validate is the singleton validator instance.
	validate     *validator.Validate
	validateOnce sync.Once
)

// Validator returns the singleton validator instance, configured to report
// field names by their form tag.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validate
}

// bindAndValidate binds form-encoded input to v and validates it.
// Failures come back as domain validation errors.
func bindAndValidate(c *gin.Context, v any) error {
	if err := c.ShouldBind(v); err != nil {
		return domain.NewValidationError("", "malformed form body")
	}

	if err := Validator().Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if ok := asValidationErrors(err, &fieldErrs); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return domain.NewValidationError(first.Field(), validationMessage(first))
		}

		return domain.NewValidationError("", err.Error())
	}

	return nil
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}

	*target = ve

	return true
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "this field is required"
	default:
		return "failed validation: " + e.Tag()
	}
}

// IDQuery extracts a required numeric id from the query string.
// Absent or non-numeric values are validation errors.
func IDQuery(c *gin.Context, name string) (int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, domain.NewValidationError(name, "this parameter is required")
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a number")
	}

	return id, nil
}

// parseID parses a required numeric id from a form field value.
func parseID(field, value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, domain.NewValidationError(field, "must be a number")
	}

	return id, nil
}

// parseISODate parses a required YYYY-MM-DD value.
func parseISODate(field, value string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be a date in YYYY-MM-DD form")
	}

	return t, nil
}

// optionalISODate normalizes an empty submitted string to nil; anything else
// must parse as YYYY-MM-DD.
func optionalISODate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	t, err := parseISODate(field, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// optionalInt normalizes an empty submitted string to nil; anything else
// must parse as an integer.
func optionalInt(field, value string) (*int64, error) {
	if value == "" {
		return nil, nil
	}

	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a number")
	}

	return &n, nil
}
