package kes

import "fmt"

// Kind classifies the reason a KES operation failed. These are the only
// failure categories the core surfaces; verification never distinguishes a
// bad Ed25519 signature from a bad Merkle witness, so both collapse to
// InvalidSignature.
type Kind int

const (
	// InvalidSeedLength means gen_key_from_seed received a seed whose
	// length does not match the instance's declared seed size.
	InvalidSeedLength Kind = iota
	// InvalidPeriod means the requested period is out of range for this
	// instance, or the signing key is not in a state that can sign or
	// update at the requested period.
	InvalidPeriod
	// InvalidSignature means cryptographic verification failed: a bad
	// Ed25519 signature or a Merkle hash mismatch.
	InvalidSignature
	// MalformedInput means a byte string presented as a verification key
	// or signature cannot be parsed into the expected structure, such as
	// a length mismatch.
	MalformedInput
)

// Is reports whether k equals other. It exists so a *Error's Kind field can
// be compared fluently in a conditional, as an alternative to errors.Is with
// a sentinel *Error.
func (k Kind) Is(other Kind) bool {
	return k == other
}

func (k Kind) String() string {
	switch k {
	case InvalidSeedLength:
		return "invalid seed length"
	case InvalidPeriod:
		return "invalid period"
	case InvalidSignature:
		return "invalid signature"
	case MalformedInput:
		return "malformed input"
	default:
		return "unknown kes error"
	}
}

// Error is the concrete error type returned by every fallible operation in
// this package. internal/dsign reports its own seed-length error, which this
// package turns into an *Error with Kind InvalidSeedLength.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "kes.Sum.Sign"
	Msg  string // optional extra detail
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is reports whether target is an *Error of the same Kind, ignoring Op and
// Msg. This lets a caller test for a failure category with a sentinel value
// built from Kind alone, e.g.:
//
//	if errors.Is(err, &kes.Error{Kind: kes.InvalidPeriod}) { ... }
//
// or, more directly, by comparing Kind.Is against the error's Kind field:
//
//	var kerr *kes.Error
//	if errors.As(err, &kerr) && kerr.Kind.Is(kes.InvalidPeriod) { ... }
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func newErr(op string, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Op: op, Msg: msg}
}
