package domain

import (
	"fmt"
	"strings"
)

// AddressTags are the labels a delivery address can carry
var AddressTags = []string{"Home", "Friends", "Office", "Others"}

// AddressDetails is the delivery address entered after picking a location
type AddressDetails struct {
	City         string `json:"city"`
	Instructions string `json:"instructions,omitempty"`
	Line1        string `json:"line1"`
	Line2        string `json:"line2"`
	Pincode      string `json:"pincode"`
	State        string `json:"state"`
	Tag          string `json:"tag"`
}

// Normalize trims surrounding whitespace from every field
func (a AddressDetails) Normalize() AddressDetails {
	return AddressDetails{
		City:         strings.TrimSpace(a.City),
		Instructions: strings.TrimSpace(a.Instructions),
		Line1:        strings.TrimSpace(a.Line1),
		Line2:        strings.TrimSpace(a.Line2),
		Pincode:      strings.TrimSpace(a.Pincode),
		State:        strings.TrimSpace(a.State),
		Tag:          strings.TrimSpace(a.Tag),
	}
}

// Validate checks the compulsory fields. Delivery instructions are optional.
func (a AddressDetails) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"address line 1", a.Line1},
		{"address line 2", a.Line2},
		{"city", a.City},
		{"state", a.State},
		{"pincode", a.Pincode},
		{"address tag", a.Tag},
	}
	for _, field := range required {
		if isBlank(field.value) {
			return fmt.Errorf("%w: %s is required", ErrInvalidAddress, field.name)
		}
	}

	if err := ValidatePincode(a.Pincode); err != nil {
		return err
	}

	if !IsAddressTag(a.Tag) {
		return fmt.Errorf("%w: unknown address tag '%s'", ErrInvalidAddress, a.Tag)
	}
	return nil
}

// IsAddressTag reports whether tag is one of AddressTags
func IsAddressTag(tag string) bool {
	for _, t := range AddressTags {
		if t == tag {
			return true
		}
	}
	return false
}
