package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Checksum represents an OSTree commit checksum (SHA-256)
type Checksum [sha256.Size]byte

// String returns the hexadecimal representation of the checksum
func (c Checksum) String() string {
	return hex.EncodeToString(c[:])
}

// Short returns the first 7 characters of the checksum (like git)
func (c Checksum) Short() string {
	return c.String()[:7]
}

// IsZero returns true if the checksum is all zeros
func (c Checksum) IsZero() bool {
	return c == Checksum{}
}

// ParseChecksum parses a hex string into a Checksum
func ParseChecksum(s string) (Checksum, error) {
	var sum Checksum
	bytes, err := hex.DecodeString(s)
	if err != nil {
		return sum, err
	}
	if len(bytes) != sha256.Size {
		return sum, ErrInvalidChecksum
	}
	copy(sum[:], bytes)
	return sum, nil
}
