package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const userPrefixLen = 32

// UserKeyPrefix maps a caller id to the object key directory holding its
// uploads. Guest and JWT ids with surrounding whitespace share a prefix.
func UserKeyPrefix(userID string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(userID)))
	return hex.EncodeToString(sum[:])[:userPrefixLen]
}
