package services

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	phonePattern = regexp.MustCompile(`^(\+?1[\s.-]?)?\(?[2-9][0-9]{2}\)?[\s.-]?[0-9]{3}[\s.-]?[0-9]{4}$`)
	zipPattern   = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
)

// CustomerField represents a single customer field with its form name and display label.
type CustomerField struct {
	Name     string
	Label    string
	Required bool
}

// CustomerFields is the ordered list of fields on the customer info step.
var CustomerFields = []CustomerField{
	{Name: "firstName", Label: "First Name", Required: true},
	{Name: "lastName", Label: "Last Name", Required: true},
	{Name: "email", Label: "Email", Required: true},
	{Name: "phone", Label: "Phone"},
	{Name: "address", Label: "Street Address"},
	{Name: "city", Label: "City"},
	{Name: "state", Label: "State"},
	{Name: "zipCode", Label: "ZIP Code"},
}

// ValidateEmail reports whether email is a well-formed address. Blank is invalid.
func ValidateEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return validation.Validate(email, is.EmailFormat) == nil
}

// ValidatePhone validates a US phone number. Empty is valid (optional field).
func ValidatePhone(phone string) bool {
	return validation.Validate(strings.TrimSpace(phone), validation.Match(phonePattern)) == nil
}

// ValidateZipCode validates a 5-digit or ZIP+4 code. Empty is valid.
func ValidateZipCode(zip string) bool {
	return validation.Validate(strings.TrimSpace(zip), validation.Match(zipPattern)) == nil
}

// ValidateCustomer checks the customer form fields and returns a map of
// field -> error message for every violation. An empty map means the
// customer step may be completed.
func ValidateCustomer(fields map[string]string) map[string]string {
	value := func(name string) string { return strings.TrimSpace(fields[name]) }

	errs := validation.Errors{
		"firstName": validation.Validate(value("firstName"),
			validation.Required.Error("First Name is required")),
		"lastName": validation.Validate(value("lastName"),
			validation.Required.Error("Last Name is required")),
		"email": validation.Validate(value("email"),
			validation.Required.Error("Email is required"),
			is.EmailFormat.Error("Invalid email format")),
		"phone": validation.Validate(value("phone"),
			validation.Match(phonePattern).Error("Invalid phone number (expected: 10 digits, e.g., 555-123-4567)")),
		"state": validation.Validate(strings.ToUpper(value("state")),
			validation.In(stateCodeValues()...).Error("Unknown state (expected: 2-letter code, e.g., CA)")),
		"zipCode": validation.Validate(value("zipCode"),
			validation.Match(zipPattern).Error("Invalid ZIP code (expected: 12345 or 12345-6789)")),
	}

	result := make(map[string]string)
	for field, err := range errs {
		if err != nil {
			result[field] = err.Error()
		}
	}
	return result
}

func stateCodeValues() []interface{} {
	values := make([]interface{}, len(USStateCodes))
	for i, s := range USStateCodes {
		values[i] = s
	}
	return values
}
