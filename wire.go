package kes

// MarshalVK encodes a verification key as its raw 32 bytes. A verification
// key's wire form is identical at every depth of the tower, so this one
// function serves Single, CompactSingle, and every Sum/CompactSum depth.
func MarshalVK(vk VerificationKey) []byte {
	out := make([]byte, VerificationKeySize)
	copy(out, vk[:])
	return out
}

// UnmarshalVK decodes data as a verification key. It returns MalformedInput
// if data is not exactly VerificationKeySize bytes.
func UnmarshalVK(data []byte) (VerificationKey, error) {
	var vk VerificationKey
	if len(data) != VerificationKeySize {
		return vk, newErr("kes.UnmarshalVK", MalformedInput, "")
	}
	copy(vk[:], data)
	return vk, nil
}
