package identity

import (
	"fmt"
	"regexp"

	"github.com/nyaruka/phonenumbers"
	"github.com/stpnv0/VillaBooker/internal/domain"
)

const contactRegion = "KR"

var (
	reNonDigit    = regexp.MustCompile(`\D`)
	reMobileLocal = regexp.MustCompile(`^010\d{8}$`)
)

// NormalizeContact strips everything but digits. The result is reversible
// enough for display and is stored next to the hash.
func NormalizeContact(raw string) string {
	return reNonDigit.ReplaceAllString(raw, "")
}

// ValidateContact accepts domestic mobile numbers only (010 + 8 digits).
func ValidateContact(raw string) error {
	norm := NormalizeContact(raw)
	if !reMobileLocal.MatchString(norm) {
		return fmt.Errorf("%w: contact must be a mobile number like 010XXXXXXXX", domain.ErrValidation)
	}

	num, err := phonenumbers.Parse(norm, contactRegion)
	if err != nil || !phonenumbers.IsValidNumberForRegion(num, contactRegion) {
		return fmt.Errorf("%w: contact is not a valid phone number", domain.ErrValidation)
	}

	return nil
}
