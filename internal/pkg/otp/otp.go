// Package otp generates numeric one-time challenge codes.
package otp

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Codes are six digits drawn uniformly from 100000-999999 so they never carry
// a leading zero. Companies and students share the same generator.
const (
	codeMin  = 100000
	codeSpan = 900000
)

// GenerateCode returns a random six-digit challenge code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate challenge code: %w", err)
	}
	return fmt.Sprintf("%06d", codeMin+n.Int64()), nil
}
