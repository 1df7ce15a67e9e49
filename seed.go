package kes

import "golang.org/x/crypto/blake2b"

// expand splits seed into two independent child seeds of the same length,
// using domain-separated Blake2b-256:
//
//	seedLeft  = Blake2b-256(0x01 || seed)
//	seedRight = Blake2b-256(0x02 || seed)
//
// The domain-separation bytes guarantee the two children are independent
// even though both derive from the same parent material. expand does not
// retain or zeroize seed itself; callers own that buffer and must zeroize it
// once both children (and anything derived from them) have been produced.
func expand(seed []byte) (seedLeft, seedRight [32]byte) {
	var bufLeft [1 + 32]byte
	bufLeft[0] = 0x01
	copy(bufLeft[1:], seed)
	seedLeft = blake2b.Sum256(bufLeft[:])
	zero(bufLeft[:])

	var bufRight [1 + 32]byte
	bufRight[0] = 0x02
	copy(bufRight[1:], seed)
	seedRight = blake2b.Sum256(bufRight[:])
	zero(bufRight[:])

	return seedLeft, seedRight
}
