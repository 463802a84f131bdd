package models

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate    *validator.Validate
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func init() {
	validate = validator.New()

	_ = validate.RegisterValidation("slug", validateSlug)
	_ = validate.RegisterValidation("halfu", validateHalfU)
}

// validateSlug accepts lowercase letters, digits and single hyphens between them
func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// validateHalfU accepts positive heights that are a multiple of 0.5
func validateHalfU(fl validator.FieldLevel) bool {
	h := fl.Field().Float()
	return h > 0 && math.Mod(h*2, 1) == 0
}

// IsSlug reports whether s is a well-formed slug
func IsSlug(s string) bool {
	return slugPattern.MatchString(s)
}

// ValidateDeviceType checks a device type record against its field rules
func ValidateDeviceType(dt DeviceType) error {
	return structError("device type "+dt.Slug, validate.Struct(dt))
}

// ValidatePlacedDevice checks a placed device against its field rules.
// It does not resolve the device type or check the rack.
func ValidatePlacedDevice(d PlacedDevice) error {
	return structError("device "+d.Label(), validate.Struct(d))
}

// ValidateLayout checks the field rules of a layout and everything it contains.
// Cross-record invariants (unique slugs, resolvable references, collisions) are checked by the placement package.
func ValidateLayout(l Layout) error {
	return structError("layout "+l.Name, validate.Struct(l))
}

// structError flattens validator errors into a single readable error
func structError(subject string, err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", strings.TrimSpace(subject), err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}
	return fmt.Errorf("%s: %s", strings.TrimSpace(subject), strings.Join(msgs, "; "))
}

// ValidateScript checks the field rules of every operation in a script
func ValidateScript(s Script) error {
	return structError("script "+s.Name, validate.Struct(s))
}
