// Package visitor derives anonymized visitor identifiers from client
// network addresses. Identifiers are used only to deduplicate likes; the
// raw address is never stored.
package visitor

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Derive turns a raw client address into a stable, privacy-preserving
// identifier by one-way hashing.
//
// Behavior:
//   - Proxy chains ("a, b, c") use only the first address.
//   - The IPv6-mapped-IPv4 prefix "::ffff:" is stripped before hashing.
//   - The same input always yields the same identifier.
//   - Empty or whitespace-only input yields "", which is never recorded
//     as a like and never matches a stored identifier.
func Derive(rawAddress string) string {
	addr := rawAddress
	if i := strings.IndexByte(addr, ','); i >= 0 {
		addr = addr[:i]
	}
	addr = strings.TrimSpace(addr)
	addr = strings.TrimPrefix(addr, "::ffff:")
	if addr == "" {
		return ""
	}

	sum := sha256.Sum256([]byte(addr))
	return hex.EncodeToString(sum[:])
}
