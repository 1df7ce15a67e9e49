package kes

// side records which of a SumSK's two children currently holds a live
// signing key. Exactly one side is active at any time: GenKeyFromSeed sets
// only left, and Update sets left to nil in the same step that sets right,
// so the two child pointers are never both non-nil.
type side uint8

const (
	sideLeft side = iota
	sideRight
)

// SumSK is the signing key of a Sum/CompactSum KES at one level of the
// Merkle tree: exactly one child signing key is active, the other is
// represented by its not-yet-instantiated seed (if Update has not yet
// crossed into it) or by nothing at all (if it has already been consumed
// and zeroized). Both child verification keys are always present, since
// they are needed to reconstruct the Merkle witness on every Sign.
type SumSK[SK any] struct {
	activeSide side
	left       *SK
	right      *SK
	otherSeed  []byte // nil once consumed or never needed again
	vkL, vkR   VerificationKey
}

// SumSig is the signature of a plain Sum KES at one level: the child
// signature plus both child verification keys, so a stateless verifier can
// recompute the parent's Merkle digest without walking any other state.
type SumSig[Sig any] struct {
	Sigma     *Sig
	VKOnPath  VerificationKey
	VKOffPath VerificationKey
}

// Sum is the recursive MMM doubling step: given a child KES algorithm D
// offering TotalPeriods() periods, Sum[SK, Sig, D] offers twice as many,
// numbered 0..2*T_D-1, as a two-leaf binary tree with D as each leaf.
//
// Sum is a zero-size tag type; its type parameters SK and Sig must match D's
// own signing-key and signature types exactly, so the compiler enforces
// that Sum is only ever instantiated over a D that actually implements
// Algorithm[SK, Sig]. See depths.go for the concrete Sum1..Sum7 ladder built
// by nesting this type over itself.
type Sum[SK any, Sig any, D Algorithm[SK, Sig]] struct{}

func (Sum[SK, Sig, D]) SeedSize() int {
	var d D
	return d.SeedSize()
}

func (Sum[SK, Sig, D]) SigSize() int {
	var d D
	return d.SigSize() + 2*VerificationKeySize
}

func (Sum[SK, Sig, D]) TotalPeriods() uint32 {
	var d D
	return 2 * d.TotalPeriods()
}

// GenKeyFromSeed expands seed into two child seeds, instantiates the left
// child as the active subtree, derives both children's verification keys
// (instantiating the right child only transiently, to compute its VK), and
// zeroizes every seed buffer once it has served its purpose. The right
// child's signing key is never retained: only its seed is, so the left
// subtree's lifetime carries the minimum possible state.
func (Sum[SK, Sig, D]) GenKeyFromSeed(seed []byte) (*SumSK[SK], error) {
	var d D
	if len(seed) != d.SeedSize() {
		return nil, newErr("kes.Sum.GenKeyFromSeed", InvalidSeedLength, "")
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

	return &SumSK[SK]{
		activeSide: sideLeft,
		left:       skL,
		otherSeed:  otherSeed,
		vkL:        vkL,
		vkR:        vkR,
	}, nil
}

// DeriveVK recomputes H2(vk_left, vk_right), the canonical definition of
// this level's verification key.
func (Sum[SK, Sig, D]) DeriveVK(sk *SumSK[SK]) VerificationKey {
	return H2(sk.vkL, sk.vkR)
}

// Sign walks into whichever child subtree owns period, and carries back the
// sibling's verification key as the Merkle witness.
func (Sum[SK, Sig, D]) Sign(period uint32, msg []byte, sk *SumSK[SK]) (*SumSig[Sig], error) {
	var d D
	half := d.TotalPeriods()
	if period >= 2*half {
		return nil, newErr("kes.Sum.Sign", InvalidPeriod, "")
	}
	if period < half {
		if sk.activeSide != sideLeft || sk.left == nil {
			return nil, newErr("kes.Sum.Sign", InvalidPeriod, "left subtree is not active")
		}
		inner, err := d.Sign(period, msg, sk.left)
		if err != nil {
			return nil, err
		}
		return &SumSig[Sig]{Sigma: inner, VKOnPath: sk.vkL, VKOffPath: sk.vkR}, nil
	}
	if sk.activeSide != sideRight || sk.right == nil {
		return nil, newErr("kes.Sum.Sign", InvalidPeriod, "right subtree is not active")
	}
	inner, err := d.Sign(period-half, msg, sk.right)
	if err != nil {
		return nil, err
	}
	return &SumSig[Sig]{Sigma: inner, VKOnPath: sk.vkR, VKOffPath: sk.vkL}, nil
}

// Verify recomputes the parent's Merkle digest from the signature's two
// child verification keys and checks it against vk, then recurses into the
// child algorithm's own Verify. Any failure, hash mismatch or inner
// signature failure alike, reports as InvalidSignature: the verifier never
// reveals which of the two checks failed.
func (Sum[SK, Sig, D]) Verify(vk VerificationKey, period uint32, msg []byte, sig *SumSig[Sig]) error {
	var d D
	half := d.TotalPeriods()
	if period >= 2*half {
		return newErr("kes.Sum.Verify", InvalidPeriod, "")
	}

	var want VerificationKey
	var sub uint32
	if period < half {
		want = H2(sig.VKOnPath, sig.VKOffPath)
		sub = period
	} else {
		want = H2(sig.VKOffPath, sig.VKOnPath)
		sub = period - half
	}
	if want != vk {
		return newErr("kes.Sum.Verify", InvalidSignature, "")
	}
	if err := d.Verify(sig.VKOnPath, sub, msg, sig.Sigma); err != nil {
		return newErr("kes.Sum.Verify", InvalidSignature, "")
	}
	return nil
}

// Update advances sk from period to period+1. Crossing from the left
// subtree into the right instantiates the right child from its stored
// seed, then zeroizes and drops the entire left subtree: after this call
// returns, there is no reachable state anywhere under sk containing a
// signing key for any period below half. Update returns (false, nil) once
// period was the instance's last period; sk has been fully zeroized in that
// case too.
func (s Sum[SK, Sig, D]) Update(sk *SumSK[SK], period uint32) (bool, error) {
	var d D
	half := d.TotalPeriods()
	total := 2 * half

	if period+1 >= total {
		s.Forget(sk)
		return false, nil
	}

	if period+1 == half {
		if sk.activeSide != sideLeft || sk.left == nil || sk.otherSeed == nil {
			return false, newErr("kes.Sum.Update", InvalidPeriod, "left subtree not active or right seed already consumed")
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
			return false, newErr("kes.Sum.Update", InvalidPeriod, "left subtree is not active")
		}
		ok, err := d.Update(sk.left, period)
		if err != nil {
			return false, err
		}
		if !ok {
			// The child reports exhaustion only once period+1 reaches its
			// own period count, and that case is the boundary handled
			// above, so this is a defensive check.
			return false, newErr("kes.Sum.Update", InvalidPeriod, "child exhausted unexpectedly")
		}
		return true, nil
	}

	if sk.activeSide != sideRight || sk.right == nil {
		return false, newErr("kes.Sum.Update", InvalidPeriod, "right subtree is not active")
	}
	ok, err := d.Update(sk.right, period-half)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, newErr("kes.Sum.Update", InvalidPeriod, "child exhausted unexpectedly")
	}
	return true, nil
}

// Forget zeroizes every secret byte reachable from sk: the active child
// (recursively), and the dormant side's seed if it has not yet been
// consumed.
func (Sum[SK, Sig, D]) Forget(sk *SumSK[SK]) {
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

// MarshalSig encodes sig as (inner signature || vk_on_path || vk_off_path).
func (Sum[SK, Sig, D]) MarshalSig(sig *SumSig[Sig]) []byte {
	var d D
	inner := d.MarshalSig(sig.Sigma)
	out := make([]byte, 0, len(inner)+2*VerificationKeySize)
	out = append(out, inner...)
	out = append(out, sig.VKOnPath[:]...)
	out = append(out, sig.VKOffPath[:]...)
	return out
}

// UnmarshalSig decodes data as (inner signature || vk_on_path || vk_off_path).
func (s Sum[SK, Sig, D]) UnmarshalSig(data []byte) (*SumSig[Sig], error) {
	if len(data) != s.SigSize() {
		return nil, newErr("kes.Sum.UnmarshalSig", MalformedInput, "")
	}
	var d D
	innerLen := d.SigSize()
	inner, err := d.UnmarshalSig(data[:innerLen])
	if err != nil {
		return nil, newErr("kes.Sum.UnmarshalSig", MalformedInput, "")
	}
	var sig SumSig[Sig]
	sig.Sigma = inner
	copy(sig.VKOnPath[:], data[innerLen:innerLen+VerificationKeySize])
	copy(sig.VKOffPath[:], data[innerLen+VerificationKeySize:])
	return &sig, nil
}
