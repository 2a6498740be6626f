package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hasher implements the salted-hash scheme shared with the previous system:
// SHA-256 over the password concatenated with a fixed salt. The stored hashes
// were migrated as-is, so the scheme cannot change without invalidating every
// account.
type Hasher struct {
	salt string
}

func NewHasher(salt string) *Hasher {
	return &Hasher{salt: salt}
}

func (h *Hasher) Hash(plain string) string {
	sum := sha256.Sum256([]byte(plain + h.salt))
	return hex.EncodeToString(sum[:])
}

func (h *Hasher) Verify(plain, hash string) bool {
	computed := h.Hash(plain)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
