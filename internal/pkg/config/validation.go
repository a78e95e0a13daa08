package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tw-network-manager/internal/types"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their configuration key
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "ipv4":
		return fmt.Sprintf("must be a valid IPv4 address, got %q", e.Value())
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

func toValidationError(section string, err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &types.ValidationError{
			Section: section,
			Field:   fe.Field(),
			Message: getValidationMessage(fe),
		}
	}
	return &types.ValidationError{Section: section, Message: err.Error()}
}

// ValidateSection checks the fields every present section must carry
func ValidateSection(section string, s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return toValidationError(section, err)
	}
	return nil
}

// ValidateStatic checks a static wired addressing tuple
func ValidateStatic(static types.StaticIPConfig) error {
	if err := validate.Struct(static); err != nil {
		return toValidationError("wired", err)
	}
	return nil
}

// ValidateWiFi checks the fields needed to activate a WiFi section
func ValidateWiFi(wifi *types.WifiConfig) error {
	if err := validate.Var(wifi.SSID, "required"); err != nil {
		return &types.ValidationError{Section: "wifi", Field: "ssid", Message: "SSID of the network to connect not specified"}
	}
	return nil
}
