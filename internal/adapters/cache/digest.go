package cache

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Digest computes the cache key for source content. The toolchain is mixed
// in so the same file compiled by a different pipeline is a different key.
func Digest(toolchain string, content []byte) string {
	h := xxhash.New()
	_, _ = h.WriteString(toolchain)
	_, _ = h.Write([]byte{0})
	_, _ = h.Write(content)
	return fmt.Sprintf("%016x", h.Sum64())
}
