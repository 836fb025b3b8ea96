package tree

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Hash returns a SHA-256 digest (64 hex characters) of the vertex count and
// the sorted labelled edge list. Two trees hash equally iff they have the same
// labelled edges, so the digest is suitable as a cache key for results that
// depend on vertex labels, such as arrangements.
func Hash(t *Tree) string {
	h := sha256.New()
	var buf [binary.MaxVarintLen64]byte
	h.Write(buf[:binary.PutUvarint(buf[:], uint64(t.NumNodes()))])
	for _, e := range t.Edges() {
		h.Write(buf[:binary.PutUvarint(buf[:], uint64(e.U))])
		h.Write(buf[:binary.PutUvarint(buf[:], uint64(e.V))])
	}
	return hex.EncodeToString(h.Sum(nil))
}
