package ast

import (
	"encoding/json"

	"github.com/minio/highwayhash"
)

// hashKey is a fixed 32-byte key; content hashing here is for
// deduplication within a single process run, not for cross-run stability
// or any security property, so a constant key is appropriate (mirrors the
// teacher's inspector/graph/hash.go).
var hashKey = []byte("SOLWATCH-AST-NODE-HASH-KEY-00000")

// Hash returns a content hash of a node's canonical JSON encoding. The
// workspace uses it to key Yul scope attribution, since Yul nodes carry no
// NodeID; two nodes with identical encodings (including src) hash equal.
func Hash(n Node) (uint64, error) {
	if n == nil {
		return 0, nil
	}
	data, err := json.Marshal(n)
	if err != nil {
		return 0, err
	}
	h, err := highwayhash.New64(hashKey)
	if err != nil {
		return 0, err
	}
	if _, err := h.Write(data); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
