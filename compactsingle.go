package kes

import "github.com/FractionEstate/Cardano-KES/internal/dsign"

// CompactSingleSK is identical to SingleSK; CompactSingle differs from
// Single only in its signature shape.
type CompactSingleSK = SingleSK

// CompactSingleSig embeds the signer's verification key alongside the raw
// Ed25519 signature, so a verifier walking a CompactSum tree can recover the
// on-path verification key without it being carried separately.
type CompactSingleSig struct {
	Sig dsign.Signature
	VK  VerificationKey
}

// CompactSingle is the compact-variant depth-0 KES leaf. It is also known
// as CompactSum0 (see depths.go).
type CompactSingle struct{}

func (CompactSingle) SeedSize() int        { return dsign.SeedSize }
func (CompactSingle) SigSize() int         { return dsign.SignatureSize + VerificationKeySize }
func (CompactSingle) TotalPeriods() uint32 { return 1 }

// GenKeyFromSeed forwards to the Ed25519 base scheme.
func (CompactSingle) GenKeyFromSeed(seed []byte) (*CompactSingleSK, error) {
	if len(seed) != dsign.SeedSize {
		return nil, newErr("kes.CompactSingle.GenKeyFromSeed", InvalidSeedLength, "")
	}
	sk, err := dsign.GenKey(seed)
	if err != nil {
		return nil, newErr("kes.CompactSingle.GenKeyFromSeed", InvalidSeedLength, err.Error())
	}
	return &CompactSingleSK{sk: sk}, nil
}

// DeriveVK forwards to the Ed25519 base scheme.
func (CompactSingle) DeriveVK(sk *CompactSingleSK) VerificationKey {
	return VerificationKey(dsign.DeriveVK(sk.sk))
}

// Sign fails with InvalidPeriod unless period is 0. The resulting signature
// embeds the signer's own verification key.
func (c CompactSingle) Sign(period uint32, msg []byte, sk *CompactSingleSK) (*CompactSingleSig, error) {
	if period != 0 {
		return nil, newErr("kes.CompactSingle.Sign", InvalidPeriod, "")
	}
	if sk.expired {
		return nil, newErr("kes.CompactSingle.Sign", InvalidPeriod, "signing key already evolved past its only period")
	}
	sig := dsign.Sign(sk.sk, msg)
	return &CompactSingleSig{Sig: sig, VK: c.DeriveVK(sk)}, nil
}

// Verify checks that the embedded verification key equals vk before
// invoking Ed25519 verification under it.
func (CompactSingle) Verify(vk VerificationKey, period uint32, msg []byte, sig *CompactSingleSig) error {
	if period != 0 {
		return newErr("kes.CompactSingle.Verify", InvalidPeriod, "")
	}
	if sig.VK != vk {
		return newErr("kes.CompactSingle.Verify", InvalidSignature, "embedded verification key mismatch")
	}
	if !dsign.Verify(dsign.VerificationKey(vk), msg, sig.Sig) {
		return newErr("kes.CompactSingle.Verify", InvalidSignature, "")
	}
	return nil
}

// Update at period 0 returns (false, nil): a CompactSingle key is exhausted
// the instant it has been used for period 0. sk is zeroized. Any other
// period fails with InvalidPeriod.
func (c CompactSingle) Update(sk *CompactSingleSK, period uint32) (bool, error) {
	if period != 0 {
		return false, newErr("kes.CompactSingle.Update", InvalidPeriod, "")
	}
	c.Forget(sk)
	return false, nil
}

// Forget zeroizes sk and marks it exhausted.
func (CompactSingle) Forget(sk *CompactSingleSK) {
	sk.sk.Zero()
	sk.expired = true
}

// ActiveVKFromSignature extracts the embedded verification key. period must
// be 0.
func (CompactSingle) ActiveVKFromSignature(sig *CompactSingleSig, period uint32) (VerificationKey, error) {
	if period != 0 {
		return VerificationKey{}, newErr("kes.CompactSingle.ActiveVKFromSignature", InvalidPeriod, "")
	}
	return sig.VK, nil
}

// MarshalSig encodes sig as (ed25519 signature || verification key).
func (CompactSingle) MarshalSig(sig *CompactSingleSig) []byte {
	out := make([]byte, 0, dsign.SignatureSize+VerificationKeySize)
	out = append(out, sig.Sig[:]...)
	out = append(out, sig.VK[:]...)
	return out
}

// UnmarshalSig decodes data as (ed25519 signature || verification key).
func (CompactSingle) UnmarshalSig(data []byte) (*CompactSingleSig, error) {
	const want = dsign.SignatureSize + VerificationKeySize
	if len(data) != want {
		return nil, newErr("kes.CompactSingle.UnmarshalSig", MalformedInput, "")
	}
	var sig CompactSingleSig
	copy(sig.Sig[:], data[:dsign.SignatureSize])
	copy(sig.VK[:], data[dsign.SignatureSize:])
	return &sig, nil
}
