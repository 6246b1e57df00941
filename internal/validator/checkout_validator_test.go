package validator_test

import (
	"testing"

	"ecokart/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestCheckoutValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		value   string
		valid   bool
		message string
	}{
		// 必須チェックは種別より優先
		{"empty name", "firstName", "", false, "This field is required."},
		{"whitespace only", "email", "   ", false, "This field is required."},
		{"empty cvv", "cvv", "", false, "This field is required."},

		{"plain text field", "firstName", "Asha", true, ""},
		{"address free text", "address", "12 MG Road", true, ""},

		{"valid email", "email", "a@b.com", true, ""},
		{"email without at", "email", "abc", false, "Please enter a valid email address."},
		{"email without tld", "email", "a@b", false, "Please enter a valid email address."},
		{"email with space", "email", "a b@c.com", false, "Please enter a valid email address."},

		{"valid phone with space", "phone", "98765 43210", true, ""},
		{"valid phone formatted", "phone", "+91 (987) 654-3210", true, ""},
		{"phone too short", "phone", "12345", false, "Please enter a valid phone number."},
		{"phone with letters", "phone", "abcdefghij", false, "Please enter a valid phone number."},

		{"valid card", "cardNumber", "1234 5678 9012 3456", true, ""},
		{"card without spaces", "cardNumber", "1234567890123456", false, "Please enter a valid card number."},
		{"card too short", "cardNumber", "1234 5678", false, "Please enter a valid card number."},

		{"valid expiry", "expiry", "09/27", true, ""},
		{"expiry month 12", "expiry", "12/30", true, ""},
		{"expiry month 13", "expiry", "13/25", false, "Please enter a valid expiry date (MM/YY)."},
		{"expiry month 00", "expiry", "00/25", false, "Please enter a valid expiry date (MM/YY)."},
		{"expiry without slash", "expiry", "0927", false, "Please enter a valid expiry date (MM/YY)."},

		{"cvv 3 digits", "cvv", "123", true, ""},
		{"cvv 4 digits", "cvv", "1234", true, ""},
		{"cvv 2 digits", "cvv", "12", false, "Please enter a valid CVV."},
		{"cvv letters", "cvv", "12a", false, "Please enter a valid CVV."},

		{"valid zip", "zip", "560001", true, ""},
		{"valid zip with extension", "zip", "560001-1234", true, ""},
		{"zip too short", "zip", "5600", false, "Please enter a valid ZIP code."},
		{"zip letters", "zip", "56000a", false, "Please enter a valid ZIP code."},
	}

	v := validator.NewCheckoutValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := v.Validate(tt.field, tt.value)
			assert.Equal(t, tt.valid, res.Valid)
			assert.Equal(t, tt.message, res.Message)
		})
	}
}

func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "1234 5678 9012 3456", validator.FormatCardNumber("1234567890123456"))
	assert.Equal(t, "1234 5678 9012 3456", validator.FormatCardNumber("1234-5678-9012-3456"))
	assert.Equal(t, "1234 5", validator.FormatCardNumber("12345"))
	assert.Equal(t, "", validator.FormatCardNumber("abc"))
}

func TestFormatExpiry(t *testing.T) {
	assert.Equal(t, "09/27", validator.FormatExpiry("0927"))
	assert.Equal(t, "09/27", validator.FormatExpiry("09/27"))
	assert.Equal(t, "09/27", validator.FormatExpiry("09279"))
	assert.Equal(t, "09/2", validator.FormatExpiry("092"))
	assert.Equal(t, "0", validator.FormatExpiry("0"))
}
