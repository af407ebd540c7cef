// Package identity turns guest contacts into lookup keys.
//
// A contact is normalised to digits and digested with HMAC-SHA256 keyed by a
// server-held pepper. Only the digest is ever used as a query predicate.
package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

var ErrEmptyPepper = errors.New("contact pepper is empty")

type Hasher struct {
	pepper []byte
}

func NewHasher(pepper string) (*Hasher, error) {
	if pepper == "" {
		return nil, ErrEmptyPepper
	}
	return &Hasher{pepper: []byte(pepper)}, nil
}

// Hash normalises the contact first, so formatting differences map to the same key.
func (h *Hasher) Hash(contact string) string {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(NormalizeContact(contact)))
	return hex.EncodeToString(mac.Sum(nil))
}
