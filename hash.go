package kes

import "golang.org/x/crypto/blake2b"

// H2 combines two child verification keys into their parent's verification
// key: Blake2b-256(a || b), unkeyed, no personalization. This is the only
// use of Blake2b in the Sum/CompactSum Merkle construction; the hash output
// is always 32 bytes regardless of the depth-0 DSIGN key size.
func H2(a, b VerificationKey) VerificationKey {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails for an over-long key, and we pass nil.
		panic("kes: blake2b.New256(nil): " + err.Error())
	}
	h.Write(a[:])
	h.Write(b[:])
	var out VerificationKey
	h.Sum(out[:0])
	return out
}
