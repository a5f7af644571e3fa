// Cache key helpers: a plain string key type plus a collision-resistant
// hash used by internal/manifest to derive keys from (source URL, variant).
package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key identifies one cache entry.
type Key string

// FromString wraps a pre-built string as a Key verbatim.
func FromString(s string) Key {
	return Key(s)
}

// HashKey returns a sha256-derived Key for the given input, used when the
// natural key (a URL plus a discriminator) should not be stored raw.
func HashKey(parts ...string) Key {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0}) // separator, avoids "ab"+"c" colliding with "a"+"bc"
	}
	return Key(hex.EncodeToString(h.Sum(nil)))
}
