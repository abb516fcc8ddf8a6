package obfs

// XOR returns the byte-wise XOR of a and b, truncated to the shorter buffer.
func XOR(a, b []byte) []byte {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// ExtendKey repeats key cyclically up to exactly length bytes.
// It panics if key is empty and length is positive.
func ExtendKey(key []byte, length int) []byte {
	if length > 0 && len(key) == 0 {
		panic("obfs: empty key")
	}
	out := make([]byte, length)
	for i := range out {
		out[i] = key[i%len(key)]
	}
	return out
}

// XORObfuscator is a repeating key.
type XORObfuscator []byte

func (x XORObfuscator) Deobfuscate(in []byte, out []byte) int {
	l := len(x)
	if l == 0 || len(out) < len(in) {
		// Invalid
		return 0
	}
	for i := range in {
		out[i] = in[i] ^ x[i%l]
	}
	return len(in)
}

func (x XORObfuscator) Obfuscate(p []byte) []byte {
	np := make([]byte, len(p))
	l := len(x)
	if l == 0 {
		copy(np, p)
		return np
	}
	for i := range p {
		np[i] = p[i] ^ x[i%l]
	}
	return np
}
