package kes

// VerificationKeySize is the length in bytes of every verification key in
// the tower, Ed25519 leaf included: 32 bytes, independent of depth.
const VerificationKeySize = 32

// VerificationKey is the 32-byte verification key shared by every layer of
// the KES tower. At depth 0 it is a raw Ed25519 public key; at every depth
// above that it is a Blake2b-256 Merkle digest of two child verification
// keys (see H2 in hash.go).
type VerificationKey [VerificationKeySize]byte

// Algorithm is implemented by a zero-size tag type, one per KES layer
// (Single, CompactSingle, Sum[...], CompactSum[...]). Instances carry no
// state of their own; all state lives in the SK/Sig values the methods
// operate on. A caller picks a layer by declaring a variable of its type,
// e.g. `var algo kes.Sum6`, and calling methods on it.
type Algorithm[SK any, Sig any] interface {
	// SeedSize is the length in bytes gen_key_from_seed requires.
	SeedSize() int
	// SigSize is the exact wire length in bytes of a marshaled Sig.
	SigSize() int
	// TotalPeriods is T, the number of periods this instance supports.
	TotalPeriods() uint32

	// GenKeyFromSeed deterministically derives a signing key from seed.
	GenKeyFromSeed(seed []byte) (*SK, error)
	// DeriveVK returns the verification key for sk's period-0 ancestor
	// (the verification key is stable across the whole lifetime of a key,
	// see spec property 2, VK stability).
	DeriveVK(sk *SK) VerificationKey
	// Sign produces a signature of msg for the given period under sk.
	Sign(period uint32, msg []byte, sk *SK) (*Sig, error)
	// Verify checks sig against vk, period and msg.
	Verify(vk VerificationKey, period uint32, msg []byte, sig *Sig) error
	// Update advances sk in place from period to period+1. It reports
	// false with a nil error when period is the last period (T-1) or
	// later: the key is then zeroized, whatever state it was in. For an
	// earlier period it returns InvalidPeriod when, at some level, the
	// subtree that holds period is not the active one. The key's current
	// period is not tracked, so an update at a period inside the active
	// subtree other than the current one is not always rejected.
	Update(sk *SK, period uint32) (ok bool, err error)
	// Forget zeroizes every secret byte reachable from sk and marks it
	// exhausted. It is always safe to call, including on a key already
	// exhausted by Update.
	Forget(sk *SK)

	// MarshalSig encodes sig per spec §6's fixed concatenation layout.
	MarshalSig(sig *Sig) []byte
	// UnmarshalSig decodes data into a Sig, or returns MalformedInput if
	// data is not exactly SigSize() bytes (recursively, at every level).
	UnmarshalSig(data []byte) (*Sig, error)
}

// Compactable is the extra capability CompactSingle and CompactSum offer:
// given a signature and the period it was produced for, recover the
// verification key that was actually active for that period. CompactSum
// requires its child to satisfy this; plain Sum does not.
type Compactable[SK any, Sig any] interface {
	Algorithm[SK, Sig]
	// ActiveVKFromSignature recovers the verification key that signed at
	// period, purely from sig.
	ActiveVKFromSignature(sig *Sig, period uint32) (VerificationKey, error)
}

// zero overwrites b with zero bytes. Seed buffers and intermediate hash
// inputs in this package are wiped with this helper as soon as they are no
// longer needed; Ed25519 signing keys are wiped by dsign.SigningKey.Zero.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
