// Package gameid generates session identifiers: a 128-bit UUID rendered as
// 26 characters of Crockford base32, short enough to read in log lines.
package gameid

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
)

// Crockford's base32 alphabet
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Length of an encoded identifier
const Length = 26

// New creates an identifier from the given entropy source. Passing a seeded
// reader makes the identifier reproducible; nil uses crypto/rand.
func New(r io.Reader) (string, error) {
	if r == nil {
		r = rand.Reader
	}
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		return "", fmt.Errorf("failed to generate uuid: %w", err)
	}
	return Encode(id), nil
}

// Encode renders a UUID as 26 base32 characters. The 128 bits are left
// padded with two zero bits, so the first character is always 0-7.
func Encode(id uuid.UUID) string {
	result := make([]byte, Length)
	// walk 5 bit groups from the least significant end
	var acc uint16
	bits := 0
	pos := Length - 1
	for i := len(id) - 1; i >= 0; i-- {
		acc |= uint16(id[i]) << bits
		bits += 8
		for bits >= 5 {
			result[pos] = alphabet[acc&0x1f]
			pos--
			acc >>= 5
			bits -= 5
		}
	}
	for pos >= 0 {
		result[pos] = alphabet[acc&0x1f]
		acc >>= 5
		pos--
	}
	return string(result)
}

// Validate checks if an identifier is well formed
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("session ID must be exactly %d characters, got %d", Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session ID first character must be 0-7, got %c", id[0])
	}
	for i, char := range id {
		if !strings.ContainsRune(alphabet, char) {
			return fmt.Errorf("invalid character %c at position %d", char, i)
		}
	}
	return nil
}
