package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	LookupCodeLength   = 6
	lookupCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// NewLookupCode returns a short guest-facing code. It is not unique on its
// own; bookings are always found by code and contact hash together.
func NewLookupCode() (string, error) {
	var sb strings.Builder
	sb.Grow(LookupCodeLength)

	limit := big.NewInt(int64(len(lookupCodeAlphabet)))
	for i := 0; i < LookupCodeLength; i++ {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		sb.WriteByte(lookupCodeAlphabet[n.Int64()])
	}

	return sb.String(), nil
}

func NormalizeLookupCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
