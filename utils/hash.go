package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserID derives the opaque user identity stored with a checkout.
// The hash is one-way; the raw email is never persisted.
func HashUserID(email string) string {
	h := sha256.Sum256([]byte(email))
	return hex.EncodeToString(h[:])
}
