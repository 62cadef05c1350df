package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrMalformedHash reports a stored hash that is not a bcrypt encoding.
// Callers must not treat it as a failed password check: it signals data
// corruption, not a user mistake.
var ErrMalformedHash = errors.New("malformed password hash")

// digest pre-hashes the password so inputs longer than bcrypt's 72-byte
// limit (and any byte sequence) are accepted.
func digest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword(digest(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword returns (false, nil) on a wrong password and
// (false, ErrMalformedHash) when hashStr does not decode as bcrypt.
func CheckPassword(password, hashStr string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashStr), digest(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}
