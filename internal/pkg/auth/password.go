package auth

import (
	"crypto/rand"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for credential hashes.
const BcryptCost = 12

// passwordAlphabet excludes ambiguous characters (0/O, 1/l/I)
const passwordAlphabet = "abcdefghijkmnpqrstuvwxyz23456789"

// TempPasswordLength is the length of generated login passwords.
const TempPasswordLength = 8

// HashPassword hashes a plaintext secret with bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext secret against a bcrypt hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// GenerateTempPassword produces a random one-time login password. Passwords are
// emailed and replaced on every reissue, so length beats memorability here.
func GenerateTempPassword() (string, error) {
	result := make([]byte, TempPasswordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		result[i] = passwordAlphabet[n.Int64()]
	}
	return string(result), nil
}
