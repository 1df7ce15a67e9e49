package kes

import "testing"

func TestSingleSignVerify(t *testing.T) {
	var algo Single
	seed := make([]byte, algo.SeedSize())
	sk, err := algo.GenKeyFromSeed(seed)
	if err != nil {
		t.Fatal(err)
	}
	vk := algo.DeriveVK(sk)

	sig, err := algo.Sign(0, []byte("msg"), sk)
	if err != nil {
		t.Fatal(err)
	}
	if err := algo.Verify(vk, 0, []byte("msg"), sig); err != nil {
		t.Fatalf("valid signature failed to verify: %v", err)
	}
}

func TestSingleRejectsNonzeroPeriod(t *testing.T) {
	var algo Single
	sk, _ := algo.GenKeyFromSeed(make([]byte, algo.SeedSize()))
	if _, err := algo.Sign(1, []byte("msg"), sk); !isKind(err, InvalidPeriod) {
		t.Fatalf("expected InvalidPeriod, got %v", err)
	}
}

func TestSingleUpdateExhausts(t *testing.T) {
	var algo Single
	sk, _ := algo.GenKeyFromSeed(make([]byte, algo.SeedSize()))
	ok, err := algo.Update(sk, 0)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("Single.Update should report exhaustion")
	}
	if !sk.expired {
		t.Fatal("signing key was not marked expired")
	}
	if _, err := algo.Sign(0, []byte("msg"), sk); !isKind(err, InvalidPeriod) {
		t.Fatalf("signing with an exhausted key should fail with InvalidPeriod, got %v", err)
	}
}

func TestSingleMarshalRoundTrip(t *testing.T) {
	var algo Single
	sk, _ := algo.GenKeyFromSeed(make([]byte, algo.SeedSize()))
	sig, _ := algo.Sign(0, []byte("msg"), sk)

	data := algo.MarshalSig(sig)
	if len(data) != algo.SigSize() {
		t.Fatalf("marshaled size = %d, want %d", len(data), algo.SigSize())
	}
	got, err := algo.UnmarshalSig(data)
	if err != nil {
		t.Fatal(err)
	}
	if *got != *sig {
		t.Fatal("round trip changed the signature")
	}
}

func TestSingleUnmarshalRejectsWrongLength(t *testing.T) {
	var algo Single
	if _, err := algo.UnmarshalSig(make([]byte, algo.SigSize()-1)); !isKind(err, MalformedInput) {
		t.Fatalf("expected MalformedInput, got %v", err)
	}
}

func isKind(err error, kind Kind) bool {
	e, ok := err.(*Error)
	return ok && e.Kind == kind
}
