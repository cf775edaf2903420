package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"user@example.com", "first.last+tag@sub.example.co"}
	for _, email := range valid {
		ok, msg := ValidateEmail(email)
		assert.True(t, ok, "expected %q to be valid: %s", email, msg)
	}

	invalid := []string{"", "plainaddress", "@example.com", "user@", "user@host"}
	for _, email := range invalid {
		ok, _ := ValidateEmail(email)
		assert.False(t, ok, "expected %q to be invalid", email)
	}
}

func TestValidatePassword(t *testing.T) {
	ok, _ := ValidatePassword("Password1")
	assert.True(t, ok)

	tests := []struct {
		password string
		reason   string
	}{
		{"Pass1", "too short"},
		{"password1", "no uppercase"},
		{"PASSWORD1", "no lowercase"},
		{"Passwords", "no number"},
	}
	for _, tt := range tests {
		ok, msg := ValidatePassword(tt.password)
		assert.False(t, ok, tt.reason)
		assert.NotEmpty(t, msg)
	}
}

func TestValidatePhone(t *testing.T) {
	ok, _ := ValidatePhone("")
	assert.True(t, ok, "phone is optional")

	ok, _ = ValidatePhone("9876543210")
	assert.True(t, ok)

	for _, phone := range []string{"1234567890", "98765", "98765432101", "abcdefghij"} {
		ok, _ := ValidatePhone(phone)
		assert.False(t, ok, "expected %q to be invalid", phone)
	}
}

func TestValidateDateOfBirth(t *testing.T) {
	ok, _ := ValidateDateOfBirth("")
	assert.True(t, ok)

	ok, _ = ValidateDateOfBirth("1990-06-15")
	assert.True(t, ok)

	for _, dob := range []string{"not-a-date", "2999-01-01", "2020-01-01"} {
		ok, _ := ValidateDateOfBirth(dob)
		assert.False(t, ok, "expected %q to be rejected", dob)
	}
}

func TestValidateProfileUpdate(t *testing.T) {
	assert.Nil(t, ValidateProfileUpdate("New Name", "9876543210", "1990-06-15", "", ""))

	// Password rules only apply when a new password is supplied
	assert.Nil(t, ValidateProfileUpdate("", "", "", "", "ignored"))

	errs := ValidateProfileUpdate("X", "12345", "", "weak", "different")
	require.NotNil(t, errs)
	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["name"])
	assert.True(t, fields["phoneNumber"])
	assert.True(t, fields["password"])
	assert.True(t, fields["confirmPassword"])
}

func TestValidateAddressFields(t *testing.T) {
	assert.Nil(t, ValidateAddressFields("home", "12 MG Road", "Bengaluru", "Karnataka", "560001", "India"))

	// Address type is optional but must be a known value when given
	assert.Nil(t, ValidateAddressFields("", "12 MG Road", "Bengaluru", "Karnataka", "560001", "India"))
	errs := ValidateAddressFields("castle", "12 MG Road", "Bengaluru", "Karnataka", "560001", "India")
	require.Len(t, errs, 1)
	assert.Equal(t, "addressType", errs[0].Field)

	errs = ValidateAddressFields("home", "", "", "", "", "")
	require.NotNil(t, errs)
	assert.Len(t, errs, 5)

	// Pincode must be six digits and not start with zero
	for _, pincode := range []string{"056001", "5600", "56000a"} {
		errs := ValidateAddressFields("home", "12 MG Road", "Bengaluru", "Karnataka", pincode, "India")
		require.Len(t, errs, 1, "pincode %q", pincode)
		assert.Equal(t, "pincode", errs[0].Field)
	}
}
