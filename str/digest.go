package str

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// DigestAlgorithm names a hash function accepted by [Digest].
// Using a named string type prevents accidental confusion with plain strings.
type DigestAlgorithm string

const (
	// SHA256 selects SHA-256.
	SHA256 DigestAlgorithm = "sha256"
	// SHA3_256 selects SHA3-256.
	SHA3_256 DigestAlgorithm = "sha3-256"
	// Blake2b256 selects BLAKE2b with a 256-bit digest.
	Blake2b256 DigestAlgorithm = "blake2b-256"
)

// DefaultPasswordCost is the bcrypt work factor used by [HashPassword] when
// no cost is supplied.
const DefaultPasswordCost = 12

// Digest returns the lower-case hex digest of the UTF-8 bytes of s.
// Returns [ErrUnsupportedDigest] for an unknown algorithm.
//
//	Digest("abc", str.SHA256)
//	// "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
func Digest(s string, algo DigestAlgorithm) (string, error) {
	data := []byte(s)
	switch algo {
	case SHA256:
		sum := sha256.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	case SHA3_256:
		sum := sha3.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	case Blake2b256:
		sum := blake2b.Sum256(data)
		return hex.EncodeToString(sum[:]), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedDigest, algo)
	}
}

// HashPassword returns the bcrypt hash of s. cost defaults to
// [DefaultPasswordCost] and must lie in [bcrypt.MinCost, bcrypt.MaxCost].
//
// bcrypt only considers the first 72 bytes of s; longer input is rejected.
func HashPassword(s string, cost ...int) (string, error) {
	c := DefaultPasswordCost
	if len(cost) > 0 {
		c = cost[0]
	}
	if c < bcrypt.MinCost || c > bcrypt.MaxCost {
		return "", fmt.Errorf("str: bcrypt cost %d must be in [%d, %d]", c, bcrypt.MinCost, bcrypt.MaxCost)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(s), c)
	if err != nil {
		return "", fmt.Errorf("str: bcrypt: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether s matches a hash produced by [HashPassword].
// Malformed hashes never match.
func CheckPassword(s, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(s)) == nil
}
