// Package kes implements Key Evolving Signatures (KES): a forward-secure
// digital signature scheme built by recursively applying the
// Malkin-Micciancio-Miner (MMM) sum construction over an Ed25519 leaf.
//
// A KES signer holds one evolving secret key. The key supports a fixed,
// compile-time number of periods T, numbered 0..T-1. Calling Update advances
// the key from period t to period t+1, consuming the old key and zeroizing
// the secret material that belonged strictly to period t and below. Once a
// key has been updated past period t, it is structurally incapable of
// signing for any period <= t, even if the evolved key is later compromised:
// that material was never retained past the call that zeroized it.
//
// The core construction is a Merkle binary tree. A verification key at depth
// d is the Blake2b-256 hash of its two children's verification keys; the
// depth-0 leaves are plain Ed25519 keys. Signing walks down to the leaf that
// owns the current period and carries back, at every level, the sibling
// subtree's verification key so a verifier can recompute the root. The
// compact variants (CompactSum, CompactSingle) let the verifier recover the
// on-path verification key from the signature itself instead of carrying it
// explicitly at every level. The compact leaf signature is larger (96 bytes
// instead of 64), the two are equal at depth 1, and the compact form is
// smaller from depth 2 on (288 bytes instead of 448 at depth 6).
//
// Eight depths are exposed, Sum0 (T=1, an alias of the Ed25519 leaf) through
// Sum7 (T=128), and the matching CompactSum0..CompactSum7. Sum6 / CompactSum6
// (64 periods) is the depth used for Cardano stake-pool block signing.
//
// This package does not implement the VRF subsystem, the CBOR envelope used
// to frame verification keys and signatures on the wire, or any
// command-line tooling; those are external collaborators. It also does not
// pursue post-quantum security, sub-period granularity, or multi-signer
// aggregation, and signing keys are never serialized across the public
// interface — only verification keys and signatures cross process
// boundaries.
package kes
