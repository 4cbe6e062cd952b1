package ast

import "encoding/json"

// Clone deep-copies a node by round-tripping it through its JSON encoding
// and the same decode registry used for ingest. This keeps clone semantics
// in lock-step with decode semantics (one registry, one source of truth)
// at the cost of a marshal/unmarshal pair. No package in this module
// calls it on a hot path.
func Clone(n Node) (Node, error) {
	if n == nil {
		return nil, nil
	}
	data, err := json.Marshal(n)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}
