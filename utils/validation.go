package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FieldValidationError represents a validation error for a specific field
type FieldValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldValidationErrors represents multiple field validation errors
type FieldValidationErrors []FieldValidationError

// Error implements the error interface
func (e FieldValidationErrors) Error() string {
	var messages []string
	for _, err := range e {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasNumber  = regexp.MustCompile(`[0-9]`)
)

// ValidateEmail checks if the email is valid
func ValidateEmail(email string) (bool, string) {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return false, ErrInvalidEmail
	}
	return true, ""
}

// ValidatePassword checks if the password meets the requirements
func ValidatePassword(password string) (bool, string) {
	if len(password) < MinPasswordLength {
		return false, fmt.Sprintf("Password should be at least %d characters", MinPasswordLength)
	}
	if !hasUpper.MatchString(password) {
		return false, "Password should contain at least one uppercase letter"
	}
	if !hasLower.MatchString(password) {
		return false, "Password should contain at least one lowercase letter"
	}
	if !hasNumber.MatchString(password) {
		return false, "Password should contain at least one number"
	}
	return true, ""
}

// ValidateConfirmPassword checks if the confirm password matches the password
func ValidateConfirmPassword(password, confirmPassword string) (bool, string) {
	if password != confirmPassword {
		return false, "Passwords do not match"
	}
	return true, ""
}

// ValidatePhone checks if the phone number is a valid 10-digit Indian number
func ValidatePhone(phone string) (bool, string) {
	if phone == "" {
		return true, "" // Phone is optional
	}
	if !phoneRegex.MatchString(phone) {
		return false, ErrInvalidPhone
	}
	return true, ""
}

// ValidateName checks if the name is valid
func ValidateName(name string) (bool, string) {
	if name == "" {
		return true, "" // Name is optional on update
	}
	if len(strings.TrimSpace(name)) < MinNameLength {
		return false, fmt.Sprintf("Name should be at least %d characters", MinNameLength)
	}
	return true, ""
}

// ValidateDateOfBirth checks the date is parseable, in the past, and the
// account holder is old enough
func ValidateDateOfBirth(dateOfBirth string) (bool, string) {
	if dateOfBirth == "" {
		return true, ""
	}
	dob, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return false, "Please enter a valid date"
	}
	now := time.Now()
	if dob.After(now) {
		return false, "Date of birth cannot be in the future"
	}
	if now.Year()-dob.Year() < MinAccountAge {
		return false, fmt.Sprintf("You must be at least %d years old", MinAccountAge)
	}
	return true, ""
}

// ValidateProfileUpdate validates the editable profile fields according to
// the same rules the edit-profile form applies
func ValidateProfileUpdate(name, phone, dateOfBirth, password, confirmPassword string) FieldValidationErrors {
	errs := FieldValidationErrors{}

	if ok, msg := ValidateName(name); !ok {
		errs = append(errs, FieldValidationError{"name", msg})
	}
	if ok, msg := ValidatePhone(phone); !ok {
		errs = append(errs, FieldValidationError{"phoneNumber", msg})
	}
	if ok, msg := ValidateDateOfBirth(dateOfBirth); !ok {
		errs = append(errs, FieldValidationError{"dateOfBirth", msg})
	}
	if password != "" {
		if ok, msg := ValidatePassword(password); !ok {
			errs = append(errs, FieldValidationError{"password", msg})
		}
		if ok, msg := ValidateConfirmPassword(password, confirmPassword); !ok {
			errs = append(errs, FieldValidationError{"confirmPassword", msg})
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
