package breaker

import (
	"github.com/tobyxdd/xorcrack/pkg/obfs"
)

// SingleByte tries every one-byte key in ascending order and returns the best
// scoring candidate. Key 0 is the starting candidate and the first maximum wins.
func (b *Breaker) SingleByte(ct []byte) Candidate {
	fn := b.scorer()
	tmp := make([]byte, len(ct))
	obfs.XORObfuscator{0}.Deobfuscate(ct, tmp)
	best := Candidate{
		Ciphertext: ct,
		Key:        []byte{0},
		Plaintext:  append([]byte{}, tmp...),
		Score:      fn(tmp),
	}
	// Use an int loop variable to avoid overflow
	for i := 1; i <= 0xff; i++ {
		obfs.XORObfuscator{byte(i)}.Deobfuscate(ct, tmp)
		if n := fn(tmp); n > best.Score {
			best.Key = []byte{byte(i)}
			best.Score = n
			copy(best.Plaintext, tmp)
		}
	}
	b.Metrics.addTrials(0x100)
	return best
}
