package utils

import (
	"regexp"
	"strings"
)

var (
	addressLineRegex = regexp.MustCompile(`^[a-zA-Z0-9\s,.'#\-/]+$`)
	cityRegex        = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	pincodeRegex     = regexp.MustCompile(`^[1-9][0-9]{5}$`)
)

// ValidAddressTypes lists the address types the backend accepts.
var ValidAddressTypes = map[string]bool{
	"home":  true,
	"work":  true,
	"other": true,
}

// ValidateAddressFields validates address fields before a create or update
// call is made. Landmark and line2 are free-form and optional.
func ValidateAddressFields(addressType, line1, city, state, pincode, country string) FieldValidationErrors {
	errs := FieldValidationErrors{}

	if addressType != "" && !ValidAddressTypes[addressType] {
		errs = append(errs, FieldValidationError{"addressType", "Address type must be home, work, or other"})
	}

	line1 = strings.TrimSpace(line1)
	if line1 == "" {
		errs = append(errs, FieldValidationError{"addressLine1", "Address line 1 is required"})
	} else if !addressLineRegex.MatchString(line1) {
		errs = append(errs, FieldValidationError{"addressLine1", "Address line 1 contains invalid characters"})
	}

	city = strings.TrimSpace(city)
	if city == "" {
		errs = append(errs, FieldValidationError{"city", "City is required"})
	} else if !cityRegex.MatchString(city) {
		errs = append(errs, FieldValidationError{"city", "City must only contain letters and spaces"})
	}

	if strings.TrimSpace(state) == "" {
		errs = append(errs, FieldValidationError{"state", "State is required"})
	}

	pincode = strings.TrimSpace(pincode)
	if pincode == "" {
		errs = append(errs, FieldValidationError{"pincode", "Pincode is required"})
	} else if !pincodeRegex.MatchString(pincode) {
		errs = append(errs, FieldValidationError{"pincode", ErrInvalidPincode})
	}

	if strings.TrimSpace(country) == "" {
		errs = append(errs, FieldValidationError{"country", "Country is required"})
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
