package kes

// CompactSumSK is identical in shape to SumSK; CompactSum differs from Sum
// only in its signature shape and in requiring its child to be Compactable.
type CompactSumSK[SK any] = SumSK[SK]

// CompactSumSig is the signature of a CompactSum KES at one level: the
// child signature plus only the sibling's verification key. The on-path
// verification key is not carried here; a verifier recovers it from Sigma
// via ActiveVKFromSignature, which is exactly what shrinks a CompactSum
// signature relative to a plain Sum one.
type CompactSumSig[Sig any] struct {
	Sigma     *Sig
	VKOffPath VerificationKey
}

// CompactSum is the compact-variant recursive step: identical to Sum except
// that D must additionally satisfy Compactable, and the signature omits the
// on-path verification key at every level (it is recovered instead of
// stored). CompactSum itself satisfies Compactable, so it can serve as the
// child of the next level up; see depths.go for the CompactSum1..7 ladder.
type CompactSum[SK any, Sig any, D Compactable[SK, Sig]] struct{}

func (CompactSum[SK, Sig, D]) SeedSize() int {
	var d D
	return d.SeedSize()
}

func (CompactSum[SK, Sig, D]) SigSize() int {
	var d D
	return d.SigSize() + VerificationKeySize
}

func (CompactSum[SK, Sig, D]) TotalPeriods() uint32 {
	var d D
	return 2 * d.TotalPeriods()
}

// GenKeyFromSeed is identical in structure to Sum.GenKeyFromSeed: the right
// child's signing key is generated only transiently to compute its
// verification key, then forgotten; only its seed is retained.
func (CompactSum[SK, Sig, D]) GenKeyFromSeed(seed []byte) (*CompactSumSK[SK], error) {
	var d D
	if len(seed) != d.SeedSize() {
		return nil, newErr("kes.CompactSum.GenKeyFromSeed", InvalidSeedLength, "")
	}

	seedL, seedR := expand(seed)
	zero(seed)

	skL, err := d.GenKeyFromSeed(seedL[:])
	zero(seedL[:])
	if err != nil {
		zero(seedR[:])
		return nil, err
	}
	vkL := d.DeriveVK(skL)

	skRTmp, err := d.GenKeyFromSeed(seedR[:])
	if err != nil {
		d.Forget(skL)
		zero(seedR[:])
		return nil, err
	}
	vkR := d.DeriveVK(skRTmp)
	d.Forget(skRTmp)

	otherSeed := make([]byte, len(seedR))
	copy(otherSeed, seedR[:])
	zero(seedR[:])

	return &CompactSumSK[SK]{
		activeSide: sideLeft,
		left:       skL,
		otherSeed:  otherSeed,
		vkL:        vkL,
		vkR:        vkR,
	}, nil
}

// DeriveVK recomputes H2(vk_left, vk_right).
func (CompactSum[SK, Sig, D]) DeriveVK(sk *CompactSumSK[SK]) VerificationKey {
	return H2(sk.vkL, sk.vkR)
}

// Sign walks into whichever child subtree owns period. Unlike plain Sum, it
// carries back only the sibling's verification key: the on-path key is
// recoverable from the inner signature at verify time.
func (CompactSum[SK, Sig, D]) Sign(period uint32, msg []byte, sk *CompactSumSK[SK]) (*CompactSumSig[Sig], error) {
	var d D
	half := d.TotalPeriods()
	if period >= 2*half {
		return nil, newErr("kes.CompactSum.Sign", InvalidPeriod, "")
	}
	if period < half {
		if sk.activeSide != sideLeft || sk.left == nil {
			return nil, newErr("kes.CompactSum.Sign", InvalidPeriod, "left subtree is not active")
		}
		inner, err := d.Sign(period, msg, sk.left)
		if err != nil {
			return nil, err
		}
		return &CompactSumSig[Sig]{Sigma: inner, VKOffPath: sk.vkR}, nil
	}
	if sk.activeSide != sideRight || sk.right == nil {
		return nil, newErr("kes.CompactSum.Sign", InvalidPeriod, "right subtree is not active")
	}
	inner, err := d.Sign(period-half, msg, sk.right)
	if err != nil {
		return nil, err
	}
	return &CompactSumSig[Sig]{Sigma: inner, VKOffPath: sk.vkL}, nil
}

// activeChildVK recovers both the child's own active verification key
// (onPath, needed to recurse into the child's Verify) and this level's
// combined Merkle digest (combined, compared against the externally
// supplied vk in Verify and returned as-is by ActiveVKFromSignature).
func (CompactSum[SK, Sig, D]) activeChildVK(sig *CompactSumSig[Sig], period uint32) (onPath, combined VerificationKey, err error) {
	var d D
	half := d.TotalPeriods()
	if period >= 2*half {
		return VerificationKey{}, VerificationKey{}, newErr("kes.CompactSum.activeChildVK", InvalidPeriod, "")
	}
	sub := period
	if period >= half {
		sub = period - half
	}
	onPath, err = d.ActiveVKFromSignature(sig.Sigma, sub)
	if err != nil {
		return VerificationKey{}, VerificationKey{}, err
	}
	if period < half {
		combined = H2(onPath, sig.VKOffPath)
	} else {
		combined = H2(sig.VKOffPath, onPath)
	}
	return onPath, combined, nil
}

// ActiveVKFromSignature recovers this level's own Merkle verification key
// for period. This is both the capability CompactSum offers to a parent
// level (so CompactSum itself satisfies Compactable) and, via
// activeChildVK, the core of Verify below.
func (c CompactSum[SK, Sig, D]) ActiveVKFromSignature(sig *CompactSumSig[Sig], period uint32) (VerificationKey, error) {
	_, combined, err := c.activeChildVK(sig, period)
	return combined, err
}

// Verify reconstructs the Merkle path via activeChildVK and compares it to
// vk, then recurses into the child's own Verify. As with Sum, a period out
// of range fails with InvalidPeriod and every other failure collapses to
// InvalidSignature.
func (c CompactSum[SK, Sig, D]) Verify(vk VerificationKey, period uint32, msg []byte, sig *CompactSumSig[Sig]) error {
	var d D
	half := d.TotalPeriods()
	if period >= 2*half {
		return newErr("kes.CompactSum.Verify", InvalidPeriod, "")
	}
	onPath, combined, err := c.activeChildVK(sig, period)
	if err != nil || combined != vk {
		return newErr("kes.CompactSum.Verify", InvalidSignature, "")
	}
	sub := period
	if period >= half {
		sub = period - half
	}
	if err := d.Verify(onPath, sub, msg, sig.Sigma); err != nil {
		return newErr("kes.CompactSum.Verify", InvalidSignature, "")
	}
	return nil
}

// Update has identical structure to Sum.Update.
func (c CompactSum[SK, Sig, D]) Update(sk *CompactSumSK[SK], period uint32) (bool, error) {
	var d D
	half := d.TotalPeriods()
	total := 2 * half

	if period+1 >= total {
		c.Forget(sk)
		return false, nil
	}

	if period+1 == half {
		if sk.activeSide != sideLeft || sk.left == nil || sk.otherSeed == nil {
			return false, newErr("kes.CompactSum.Update", InvalidPeriod, "left subtree not active or right seed already consumed")
		}
		skR, err := d.GenKeyFromSeed(sk.otherSeed)
		if err != nil {
			return false, err
		}
		d.Forget(sk.left)
		zero(sk.otherSeed)
		sk.left = nil
		sk.otherSeed = nil
		sk.right = skR
		sk.activeSide = sideRight
		return true, nil
	}

	if period < half {
		if sk.activeSide != sideLeft || sk.left == nil {
			return false, newErr("kes.CompactSum.Update", InvalidPeriod, "left subtree is not active")
		}
		ok, err := d.Update(sk.left, period)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, newErr("kes.CompactSum.Update", InvalidPeriod, "child exhausted unexpectedly")
		}
		return true, nil
	}

	if sk.activeSide != sideRight || sk.right == nil {
		return false, newErr("kes.CompactSum.Update", InvalidPeriod, "right subtree is not active")
	}
	ok, err := d.Update(sk.right, period-half)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, newErr("kes.CompactSum.Update", InvalidPeriod, "child exhausted unexpectedly")
	}
	return true, nil
}

// Forget has identical structure to Sum.Forget.
func (CompactSum[SK, Sig, D]) Forget(sk *CompactSumSK[SK]) {
	var d D
	if sk.left != nil {
		d.Forget(sk.left)
		sk.left = nil
	}
	if sk.right != nil {
		d.Forget(sk.right)
		sk.right = nil
	}
	if sk.otherSeed != nil {
		zero(sk.otherSeed)
		sk.otherSeed = nil
	}
}

// MarshalSig encodes sig as (inner signature || vk_off_path).
func (CompactSum[SK, Sig, D]) MarshalSig(sig *CompactSumSig[Sig]) []byte {
	var d D
	inner := d.MarshalSig(sig.Sigma)
	out := make([]byte, 0, len(inner)+VerificationKeySize)
	out = append(out, inner...)
	out = append(out, sig.VKOffPath[:]...)
	return out
}

// UnmarshalSig decodes data as (inner signature || vk_off_path).
func (c CompactSum[SK, Sig, D]) UnmarshalSig(data []byte) (*CompactSumSig[Sig], error) {
	if len(data) != c.SigSize() {
		return nil, newErr("kes.CompactSum.UnmarshalSig", MalformedInput, "")
	}
	var d D
	innerLen := d.SigSize()
	inner, err := d.UnmarshalSig(data[:innerLen])
	if err != nil {
		return nil, newErr("kes.CompactSum.UnmarshalSig", MalformedInput, "")
	}
	var sig CompactSumSig[Sig]
	sig.Sigma = inner
	copy(sig.VKOffPath[:], data[innerLen:])
	return &sig, nil
}
