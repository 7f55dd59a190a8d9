// Package hashing provides the content hash used to reduce host identifiers
// to machine ids.
package hashing

// ConsistentHash reduces a byte string to a uint64 with the additive djb2
// hash (seed 5381, h = h*33 + b). Deterministic across processes and
// platforms; the snowflake factory keeps the low bits of the result as its
// machine id.
func ConsistentHash(v []byte) uint64 {
	h := uint64(5381)
	for _, b := range v {
		h = h*33 + uint64(b)
	}
	return h
}
