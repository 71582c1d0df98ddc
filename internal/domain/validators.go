package domain

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	indianMobileRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	otpRegex          = regexp.MustCompile(`^[0-9]{6}$`)
	phoneRegex        = regexp.MustCompile(`^[0-9]{10,15}$`)
	pincodeRegex      = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	emailRegex        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// CleanDigits strips everything but ASCII digits from user input
func CleanDigits(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateIndianMobile accepts 10-digit numbers starting with 6, 7, 8 or 9
func ValidateIndianMobile(number string) error {
	if !indianMobileRegex.MatchString(number) {
		return fmt.Errorf("%w: enter a valid Indian mobile number (starts with 6, 7, 8, or 9)", ErrInvalidPhoneNumber)
	}
	return nil
}

// ValidatePhoneNumber accepts 10 to 15 digits
func ValidatePhoneNumber(number string) error {
	if !phoneRegex.MatchString(number) {
		return fmt.Errorf("%w: expected 10 to 15 digits", ErrInvalidPhoneNumber)
	}
	return nil
}

// ValidateOTP accepts exactly six digits
func ValidateOTP(code string) error {
	if !otpRegex.MatchString(code) {
		return fmt.Errorf("%w: expected 6 digits", ErrInvalidOTP)
	}
	return nil
}

// ValidateName requires at least two visible characters
func ValidateName(name string) error {
	if len([]rune(strings.TrimSpace(name))) < 2 {
		return fmt.Errorf("name must have at least 2 characters")
	}
	return nil
}

// ValidateEmail checks the basic local@domain.tld shape
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

// ValidatePincode accepts six-digit Indian postal codes
func ValidatePincode(pincode string) error {
	if !pincodeRegex.MatchString(pincode) {
		return fmt.Errorf("%w: pincode must be 6 digits", ErrInvalidAddress)
	}
	return nil
}

// isBlank reports whether s has no visible characters
func isBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}
