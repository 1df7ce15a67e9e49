package dsign

import (
	"bytes"
	"testing"
)

var zeroSeed = make([]byte, SeedSize)

func TestGenKeyDeterministic(t *testing.T) {
	sk1, err := GenKey(zeroSeed)
	if err != nil {
		t.Fatal(err)
	}
	sk2, err := GenKey(zeroSeed)
	if err != nil {
		t.Fatal(err)
	}
	if sk1 != sk2 {
		t.Fatal("GenKey is not deterministic")
	}
	if DeriveVK(sk1) != DeriveVK(sk2) {
		t.Fatal("DeriveVK is not deterministic")
	}
}

func TestGenKeyInvalidSeedLength(t *testing.T) {
	if _, err := GenKey(make([]byte, SeedSize-1)); err == nil {
		t.Fatal("expected error for short seed")
	} else if !IsLengthError(err) {
		t.Fatalf("expected a length error, got %v", err)
	}
}

func TestSignVerify(t *testing.T) {
	sk, err := GenKey(zeroSeed)
	if err != nil {
		t.Fatal(err)
	}
	vk := DeriveVK(sk)
	msg := []byte("block header")
	sig := Sign(sk, msg)
	if !Verify(vk, msg, sig) {
		t.Fatal("valid signature failed to verify")
	}
}

func TestVerifyRejectsBitFlip(t *testing.T) {
	sk, err := GenKey(zeroSeed)
	if err != nil {
		t.Fatal(err)
	}
	vk := DeriveVK(sk)
	msg := []byte("block header")
	sig := Sign(sk, msg)

	flipped := append([]byte(nil), msg...)
	flipped[0] ^= 1
	if Verify(vk, flipped, sig) {
		t.Fatal("verify accepted a flipped message")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	sk, _ := GenKey(zeroSeed)
	msg := []byte("block header")
	sig := Sign(sk, msg)

	otherSeed := bytes.Repeat([]byte{0x42}, SeedSize)
	otherSK, _ := GenKey(otherSeed)
	otherVK := DeriveVK(otherSK)
	if Verify(otherVK, msg, sig) {
		t.Fatal("verify accepted signature under the wrong key")
	}
}

// TestVerifyRejectsSmallOrderKey feeds Verify the identity point (x=0, y=1),
// one of the eight edwards25519 points whose order divides the cofactor 8,
// together with a signature forged specifically against it. crypto/ed25519
// checks the cofactorless equation [S]B == R + [h]A; with A the identity,
// h*A is the identity regardless of h, so choosing R = B (the base
// point) and S = 1 satisfies the equation for every message, and the inner
// ed25519.Verify call alone accepts this signature. Only the explicit
// small-order rejection in isSmallOrder stops Verify from treating it as
// valid; a broken or inverted cofactor check would make this test the only
// thing in the suite that notices.
func TestVerifyRejectsSmallOrderKey(t *testing.T) {
	var vk VerificationKey
	vk[0] = 0x01 // identity point: compressed encoding is 0x01 || 31 zero bytes

	var sig Signature
	sig[0] = 0x58
	for i := 1; i < 32; i++ {
		sig[i] = 0x66 // R = base point, compressed encoding 0x58 || 31*0x66
	}
	sig[32] = 0x01 // S = 1, remaining bytes zero

	if Verify(vk, []byte("attack"), sig) {
		t.Fatal("Verify accepted a forged signature under a small-order public key")
	}
}

func TestSigningKeyZero(t *testing.T) {
	sk, _ := GenKey(bytes.Repeat([]byte{0x7f}, SeedSize))
	sk.Zero()
	for i, b := range sk {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %x", i, b)
		}
	}
}
