package kes

// This file instantiates the Sum0..Sum7 and CompactSum0..CompactSum7 ladder
// from spec §4.8 by nesting the generic Sum/CompactSum type over itself,
// seven times, starting from the Single/CompactSingle leaf. Each depth's
// signing-key and signature types are also named, since Go cannot infer a
// usable name for `Sum[Sum[...], Sum[...], Sum[...]]` at a call site.

// Depth 0: T=1, the Ed25519 leaf itself.
type (
	Sum0SK  = SingleSK
	Sum0Sig = SingleSig
	Sum0    = Single

	CompactSum0SK  = CompactSingleSK
	CompactSum0Sig = CompactSingleSig
	CompactSum0    = CompactSingle
)

// Depth 1: T=2.
type (
	Sum1SK  = SumSK[Sum0SK]
	Sum1Sig = SumSig[Sum0Sig]
	Sum1    = Sum[Sum0SK, Sum0Sig, Sum0]

	CompactSum1SK  = CompactSumSK[CompactSum0SK]
	CompactSum1Sig = CompactSumSig[CompactSum0Sig]
	CompactSum1    = CompactSum[CompactSum0SK, CompactSum0Sig, CompactSum0]
)

// Depth 2: T=4.
type (
	Sum2SK  = SumSK[Sum1SK]
	Sum2Sig = SumSig[Sum1Sig]
	Sum2    = Sum[Sum1SK, Sum1Sig, Sum1]

	CompactSum2SK  = CompactSumSK[CompactSum1SK]
	CompactSum2Sig = CompactSumSig[CompactSum1Sig]
	CompactSum2    = CompactSum[CompactSum1SK, CompactSum1Sig, CompactSum1]
)

// Depth 3: T=8.
type (
	Sum3SK  = SumSK[Sum2SK]
	Sum3Sig = SumSig[Sum2Sig]
	Sum3    = Sum[Sum2SK, Sum2Sig, Sum2]

	CompactSum3SK  = CompactSumSK[CompactSum2SK]
	CompactSum3Sig = CompactSumSig[CompactSum2Sig]
	CompactSum3    = CompactSum[CompactSum2SK, CompactSum2Sig, CompactSum2]
)

// Depth 4: T=16.
type (
	Sum4SK  = SumSK[Sum3SK]
	Sum4Sig = SumSig[Sum3Sig]
	Sum4    = Sum[Sum3SK, Sum3Sig, Sum3]

	CompactSum4SK  = CompactSumSK[CompactSum3SK]
	CompactSum4Sig = CompactSumSig[CompactSum3Sig]
	CompactSum4    = CompactSum[CompactSum3SK, CompactSum3Sig, CompactSum3]
)

// Depth 5: T=32.
type (
	Sum5SK  = SumSK[Sum4SK]
	Sum5Sig = SumSig[Sum4Sig]
	Sum5    = Sum[Sum4SK, Sum4Sig, Sum4]

	CompactSum5SK  = CompactSumSK[CompactSum4SK]
	CompactSum5Sig = CompactSumSig[CompactSum4Sig]
	CompactSum5    = CompactSum[CompactSum4SK, CompactSum4Sig, CompactSum4]
)

// Depth 6: T=64. This is the depth Cardano uses for stake-pool block
// signing (spec §8 scenario S3).
type (
	Sum6SK  = SumSK[Sum5SK]
	Sum6Sig = SumSig[Sum5Sig]
	Sum6    = Sum[Sum5SK, Sum5Sig, Sum5]

	CompactSum6SK  = CompactSumSK[CompactSum5SK]
	CompactSum6Sig = CompactSumSig[CompactSum5Sig]
	CompactSum6    = CompactSum[CompactSum5SK, CompactSum5Sig, CompactSum5]
)

// Depth 7: T=128.
type (
	Sum7SK  = SumSK[Sum6SK]
	Sum7Sig = SumSig[Sum6Sig]
	Sum7    = Sum[Sum6SK, Sum6Sig, Sum6]

	CompactSum7SK  = CompactSumSK[CompactSum6SK]
	CompactSum7Sig = CompactSumSig[CompactSum6Sig]
	CompactSum7    = CompactSum[CompactSum6SK, CompactSum6Sig, CompactSum6]
)

// Period counts and wire sizes at each depth, spelled out as untyped
// constants so callers can use them without constructing a value first
// (e.g. to size a slot-to-period lookup table). Sizes follow spec §6:
// Sum sig at depth d is 64 + 64*d bytes; CompactSum sig at depth d is
// 96 + 32*d bytes.
const (
	Sum0Periods = 1 << 0
	Sum1Periods = 1 << 1
	Sum2Periods = 1 << 2
	Sum3Periods = 1 << 3
	Sum4Periods = 1 << 4
	Sum5Periods = 1 << 5
	Sum6Periods = 1 << 6
	Sum7Periods = 1 << 7

	CompactSum0Periods = Sum0Periods
	CompactSum1Periods = Sum1Periods
	CompactSum2Periods = Sum2Periods
	CompactSum3Periods = Sum3Periods
	CompactSum4Periods = Sum4Periods
	CompactSum5Periods = Sum5Periods
	CompactSum6Periods = Sum6Periods
	CompactSum7Periods = Sum7Periods

	Sum0SigSize = 64
	Sum1SigSize = 64 + 64*1
	Sum2SigSize = 64 + 64*2
	Sum3SigSize = 64 + 64*3
	Sum4SigSize = 64 + 64*4
	Sum5SigSize = 64 + 64*5
	Sum6SigSize = 64 + 64*6
	Sum7SigSize = 64 + 64*7

	CompactSum0SigSize = 96
	CompactSum1SigSize = 96 + 32*1
	CompactSum2SigSize = 96 + 32*2
	CompactSum3SigSize = 96 + 32*3
	CompactSum4SigSize = 96 + 32*4
	CompactSum5SigSize = 96 + 32*5
	CompactSum6SigSize = 96 + 32*6
	CompactSum7SigSize = 96 + 32*7
)
