package kes

import "github.com/FractionEstate/Cardano-KES/internal/dsign"

// SingleSK is the signing key of the depth-0 KES leaf: an Ed25519 signing
// key plus a flag recording whether it has already been consumed by Update.
type SingleSK struct {
	sk      dsign.SigningKey
	expired bool
}

// SingleSig is the signature type of the depth-0 KES leaf: a raw Ed25519
// signature, carried across the wire verbatim.
type SingleSig = dsign.Signature

// Single is the T=1 KES leaf: a thin wrapper turning Ed25519 into a KES
// supporting exactly period 0. It is also known as Sum0 (see depths.go).
type Single struct{}

func (Single) SeedSize() int        { return dsign.SeedSize }
func (Single) SigSize() int         { return dsign.SignatureSize }
func (Single) TotalPeriods() uint32 { return 1 }

// GenKeyFromSeed forwards to the Ed25519 base scheme.
func (Single) GenKeyFromSeed(seed []byte) (*SingleSK, error) {
	if len(seed) != dsign.SeedSize {
		return nil, newErr("kes.Single.GenKeyFromSeed", InvalidSeedLength, "")
	}
	sk, err := dsign.GenKey(seed)
	if err != nil {
		return nil, newErr("kes.Single.GenKeyFromSeed", InvalidSeedLength, err.Error())
	}
	return &SingleSK{sk: sk}, nil
}

// DeriveVK forwards to the Ed25519 base scheme.
func (Single) DeriveVK(sk *SingleSK) VerificationKey {
	return VerificationKey(dsign.DeriveVK(sk.sk))
}

// Sign fails with InvalidPeriod unless period is 0.
func (Single) Sign(period uint32, msg []byte, sk *SingleSK) (*SingleSig, error) {
	if period != 0 {
		return nil, newErr("kes.Single.Sign", InvalidPeriod, "")
	}
	if sk.expired {
		return nil, newErr("kes.Single.Sign", InvalidPeriod, "signing key already evolved past its only period")
	}
	sig := dsign.Sign(sk.sk, msg)
	return &sig, nil
}

// Verify fails with InvalidPeriod unless period is 0.
func (Single) Verify(vk VerificationKey, period uint32, msg []byte, sig *SingleSig) error {
	if period != 0 {
		return newErr("kes.Single.Verify", InvalidPeriod, "")
	}
	if !dsign.Verify(dsign.VerificationKey(vk), msg, *sig) {
		return newErr("kes.Single.Verify", InvalidSignature, "")
	}
	return nil
}

// Update at period 0 returns (false, nil): a Single key is exhausted the
// instant it has been used for period 0. sk is zeroized. Any other period
// fails with InvalidPeriod.
func (s Single) Update(sk *SingleSK, period uint32) (bool, error) {
	if period != 0 {
		return false, newErr("kes.Single.Update", InvalidPeriod, "")
	}
	s.Forget(sk)
	return false, nil
}

// Forget zeroizes sk and marks it exhausted.
func (Single) Forget(sk *SingleSK) {
	sk.sk.Zero()
	sk.expired = true
}

// MarshalSig encodes sig as its raw 64 Ed25519 signature bytes.
func (Single) MarshalSig(sig *SingleSig) []byte {
	out := make([]byte, dsign.SignatureSize)
	copy(out, sig[:])
	return out
}

// UnmarshalSig decodes data as a raw 64-byte Ed25519 signature.
func (Single) UnmarshalSig(data []byte) (*SingleSig, error) {
	if len(data) != dsign.SignatureSize {
		return nil, newErr("kes.Single.UnmarshalSig", MalformedInput, "")
	}
	var sig SingleSig
	copy(sig[:], data)
	return &sig, nil
}
