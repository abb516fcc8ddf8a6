// Package breaker recovers single-byte and repeating XOR keys from ciphertext.
package breaker

import (
	"github.com/tobyxdd/xorcrack/pkg/score"
)

// Candidate is one decryption trial. Plaintext is Ciphertext XOR the extended Key.
type Candidate struct {
	Ciphertext []byte
	Key        []byte
	Plaintext  []byte
	Score      int
}

// Breaker runs the searches with a scorer and optional metrics.
type Breaker struct {
	// Score defaults to score.English
	Score   score.Func
	Metrics *Metrics
}

func (b *Breaker) scorer() score.Func {
	if b.Score == nil {
		return score.English
	}
	return b.Score
}

// BreakSingleByte is a shortcut for Breaker.SingleByte without metrics.
func BreakSingleByte(ct []byte, fn score.Func) Candidate {
	return (&Breaker{Score: fn}).SingleByte(ct)
}

// BreakRepeating is a shortcut for Breaker.Repeating without metrics.
func BreakRepeating(ct []byte, k int, fn score.Func) (Candidate, error) {
	return (&Breaker{Score: fn}).Repeating(ct, k)
}

// DetectKeySize is a shortcut for Breaker.KeySize without metrics.
func DetectKeySize(ct []byte, min, max int) (KeySize, error) {
	return (&Breaker{}).KeySize(ct, min, max)
}

// Break is a shortcut for Breaker.Break without metrics.
func Break(ct []byte, min, max int, fn score.Func) (Candidate, KeySize, error) {
	return (&Breaker{Score: fn}).Break(ct, min, max)
}
