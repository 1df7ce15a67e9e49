package kes

import (
	"testing"

	"github.com/FractionEstate/Cardano-KES/internal/dsign"
)

// TestSum2FullWalk is spec scenario S2: Seed = [0x42; 32], Sum2 (4 periods).
// Sign "p0".."p3" at periods 0..3 with one Update between each; all four
// verify, the final Update reports exhaustion, and a post-evolution key can
// no longer produce a valid signature for an old period.
func TestSum2FullWalk(t *testing.T) {
	var algo Sum2
	seed := bytesOf(0x42, algo.SeedSize())
	sk, err := algo.GenKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	vk := algo.DeriveVK(sk)

	var sigs [4]*Sum2Sig
	for period := uint32(0); period < 4; period++ {
		msg := []byte("p" + string(rune('0'+period)))
		sig, err := algo.Sign(period, msg, sk)
		if err != nil {
			t.Fatalf("period %d: sign: %v", period, err)
		}
		sigs[period] = sig
		if err := algo.Verify(vk, period, msg, sig); err != nil {
			t.Fatalf("period %d: verify: %v", period, err)
		}
		if period < 3 {
			ok, err := algo.Update(sk, period)
			if err != nil {
				t.Fatalf("period %d: update: %v", period, err)
			}
			if !ok {
				t.Fatalf("period %d: update reported exhaustion too early", period)
			}
		}
	}

	ok, err := algo.Update(sk, 3)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("update at the last period should report exhaustion")
	}

	// The key has now been updated three times (once per transition) and
	// once more into exhaustion; it can no longer sign period 0.
	if _, err := algo.Sign(0, []byte("p0"), sk); !isKind(err, InvalidPeriod) {
		t.Fatalf("signing period 0 with an evolved key should fail with InvalidPeriod, got %v", err)
	}
}

// TestSum2CrossPeriodRejection is spec scenario S4: a period-0 signature
// must not verify at period 1.
func TestSum2CrossPeriodRejection(t *testing.T) {
	var algo Sum2
	sk, _ := algo.GenKeyFromSeed(bytesOf(0x42, algo.SeedSize()))
	vk := algo.DeriveVK(sk)
	sig, err := algo.Sign(0, []byte("p0"), sk)
	if err != nil {
		t.Fatal(err)
	}
	if err := algo.Verify(vk, 1, []byte("p0"), sig); !isKind(err, InvalidSignature) {
		t.Fatalf("expected InvalidSignature, got %v", err)
	}
}

func TestSum2MessageIntegrity(t *testing.T) {
	var algo Sum2
	sk, _ := algo.GenKeyFromSeed(bytesOf(0x01, algo.SeedSize()))
	vk := algo.DeriveVK(sk)
	sig, err := algo.Sign(0, []byte("message"), sk)
	if err != nil {
		t.Fatal(err)
	}
	if err := algo.Verify(vk, 0, []byte("messagX"), sig); !isKind(err, InvalidSignature) {
		t.Fatalf("expected InvalidSignature for a tampered message, got %v", err)
	}
}

func TestSum2VKStableAcrossUpdates(t *testing.T) {
	var algo Sum2
	sk, _ := algo.GenKeyFromSeed(bytesOf(0x07, algo.SeedSize()))
	vk0 := algo.DeriveVK(sk)
	for period := uint32(0); period < 3; period++ {
		if _, err := algo.Update(sk, period); err != nil {
			t.Fatal(err)
		}
		if got := algo.DeriveVK(sk); got != vk0 {
			t.Fatalf("period %d: verification key changed after update", period+1)
		}
	}
}

func TestSum2Determinism(t *testing.T) {
	var algo Sum2
	seed := bytesOf(0x09, algo.SeedSize())
	sk1, err := algo.GenKeyFromSeed(append([]byte(nil), seed...))
	if err != nil {
		t.Fatal(err)
	}
	sk2, err := algo.GenKeyFromSeed(append([]byte(nil), seed...))
	if err != nil {
		t.Fatal(err)
	}
	if algo.DeriveVK(sk1) != algo.DeriveVK(sk2) {
		t.Fatal("GenKeyFromSeed is not deterministic")
	}
	sig1, err := algo.Sign(0, []byte("m"), sk1)
	if err != nil {
		t.Fatal(err)
	}
	sig2, err := algo.Sign(0, []byte("m"), sk2)
	if err != nil {
		t.Fatal(err)
	}
	if algo.MarshalSig(sig1) == nil || string(algo.MarshalSig(sig1)) != string(algo.MarshalSig(sig2)) {
		t.Fatal("Sign is not deterministic")
	}
}

func TestSum2SigSize(t *testing.T) {
	var algo Sum2
	if algo.SigSize() != Sum2SigSize {
		t.Fatalf("SigSize() = %d, want %d", algo.SigSize(), Sum2SigSize)
	}
	sk, _ := algo.GenKeyFromSeed(bytesOf(0x00, algo.SeedSize()))
	sig, _ := algo.Sign(0, []byte("m"), sk)
	if got := len(algo.MarshalSig(sig)); got != Sum2SigSize {
		t.Fatalf("marshaled size = %d, want %d", got, Sum2SigSize)
	}
}

// TestSumUpdateZeroizesRetiredChild is spec §8 property 3 (forward
// security), the zeroization half: once Update crosses from the left
// subtree into the right, the retired left signing key must be wiped in
// place, not merely unlinked. This exercises that through the actual
// Sum.Update/Forget path (sum.go:197), not through internal/dsign's
// standalone Zero() method in isolation: a regression that dropped the
// d.Forget(sk.left) call at the boundary would leave the retired key's bytes
// live in memory, and this is the only test that would notice.
func TestSumUpdateZeroizesRetiredChild(t *testing.T) {
	var algo Sum1
	sk, err := algo.GenKeyFromSeed(bytesOf(0x09, algo.SeedSize()))
	if err != nil {
		t.Fatal(err)
	}

	retired := sk.left
	if retired == nil {
		t.Fatal("left child was not instantiated at generation")
	}
	if singleSKZero(retired) {
		t.Fatal("freshly generated left child is already all-zero; test setup is broken")
	}

	ok, err := algo.Update(sk, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("Update at period 0 of a 2-period key should not report exhaustion")
	}

	if !singleSKZero(retired) {
		t.Fatal("left child's signing key was not zeroized when Update crossed the left/right boundary")
	}
}

// singleSKZero reports whether sk's underlying Ed25519 signing key bytes are
// all zero. It reaches into the unexported sk field directly rather than via
// a new exported API, since this file shares package kes with single.go.
func singleSKZero(sk *SingleSK) bool {
	var zero dsign.SigningKey
	return sk.sk == zero
}

func TestSum2MarshalRoundTrip(t *testing.T) {
	var algo Sum2
	sk, _ := algo.GenKeyFromSeed(bytesOf(0x03, algo.SeedSize()))
	for period := uint32(0); period < 2; period++ {
		if _, err := algo.Update(sk, period); err != nil {
			t.Fatal(err)
		}
	}
	sig, _ := algo.Sign(2, []byte("m"), sk)
	data := algo.MarshalSig(sig)
	got, err := algo.UnmarshalSig(data)
	if err != nil {
		t.Fatal(err)
	}
	vk := algo.DeriveVK(sk)
	if err := algo.Verify(vk, 2, []byte("m"), got); err != nil {
		t.Fatalf("round-tripped signature failed to verify: %v", err)
	}
}
