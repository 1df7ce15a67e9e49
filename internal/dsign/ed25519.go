// Package dsign implements the single-period base digital signature scheme
// that the KES tower's depth-0 leaf wraps: Ed25519, deterministic key
// generation from a 32-byte seed, and strict verification that rejects
// non-canonical point encodings and small-order public keys.
package dsign

import (
	"crypto/ed25519"

	"filippo.io/edwards25519"
)

const (
	// SeedSize is the length in bytes of a key-generation seed.
	SeedSize = ed25519.SeedSize
	// VerificationKeySize is the length in bytes of a verification key.
	VerificationKeySize = ed25519.PublicKeySize
	// SignatureSize is the length in bytes of a signature.
	SignatureSize = ed25519.SignatureSize
)

// SigningKey is an Ed25519 seed held in its 32-byte seed form, not the
// expanded 64-byte private key form. It must be zeroized on drop; use Zero.
type SigningKey [SeedSize]byte

// VerificationKey is a 32-byte Ed25519 public key.
type VerificationKey [VerificationKeySize]byte

// Signature is a 64-byte Ed25519 signature.
type Signature [SignatureSize]byte

// GenKey derives a signing key deterministically from seed. Two calls with
// the same seed yield byte-identical results.
func GenKey(seed []byte) (SigningKey, error) {
	var sk SigningKey
	if len(seed) != SeedSize {
		return sk, errInvalidSeedLength
	}
	copy(sk[:], seed)
	return sk, nil
}

// DeriveVK returns the verification key corresponding to sk.
func DeriveVK(sk SigningKey) VerificationKey {
	priv := ed25519.NewKeyFromSeed(sk[:])
	var vk VerificationKey
	copy(vk[:], priv.Public().(ed25519.PublicKey))
	return vk
}

// Sign produces a deterministic RFC 8032 Ed25519 signature of msg under sk.
func Sign(sk SigningKey, msg []byte) Signature {
	priv := ed25519.NewKeyFromSeed(sk[:])
	var sig Signature
	copy(sig[:], ed25519.Sign(priv, msg))
	return sig
}

// Verify reports whether sig is a valid signature of msg under vk. It
// rejects non-canonical public key encodings and small-order public keys in
// addition to whatever crypto/ed25519 itself rejects (non-canonical scalars,
// malformed point encodings).
func Verify(vk VerificationKey, msg []byte, sig Signature) bool {
	if !ed25519.Verify(vk[:], msg, sig[:]) {
		return false
	}
	// Point.SetBytes accepts non-canonical encodings of valid points, so
	// re-encode and compare to reject them.
	p, err := new(edwards25519.Point).SetBytes(vk[:])
	if err != nil || string(p.Bytes()) != string(vk[:]) {
		return false
	}
	return !isSmallOrder(vk[:])
}

// isSmallOrder reports whether pub decodes to a point in the curve's
// small-order torsion subgroup: multiplying by the cofactor (8) collapses
// such a point to the identity. A well-formed Ed25519 public key used for
// KES block signing must never be one of these eight points.
func isSmallOrder(pub []byte) bool {
	p, err := new(edwards25519.Point).SetBytes(pub)
	if err != nil {
		return true
	}
	var cleared edwards25519.Point
	cleared.MultByCofactor(p)
	return cleared.Equal(edwards25519.NewIdentityPoint()) == 1
}

// Zero overwrites sk with zero bytes.
func (sk *SigningKey) Zero() {
	for i := range sk {
		sk[i] = 0
	}
}

var errInvalidSeedLength = &lengthError{"dsign: invalid seed length"}

// lengthError is a tiny local error type so this package does not need to
// import the parent kes package's Kind taxonomy (which would be an import
// cycle): the parent wraps it into a *kes.Error with Kind InvalidSeedLength.
type lengthError struct{ msg string }

func (e *lengthError) Error() string { return e.msg }

// IsLengthError reports whether err was produced by a seed-length check in
// this package.
func IsLengthError(err error) bool {
	_, ok := err.(*lengthError)
	return ok
}
