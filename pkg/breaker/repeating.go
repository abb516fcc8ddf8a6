package breaker

import (
	"sync"

	"github.com/tobyxdd/xorcrack/pkg/obfs"
)

// Column gathers ct[i], ct[i+k], ct[i+2k], ...
func Column(ct []byte, i, k int) []byte {
	if k <= 0 || i < 0 || i >= len(ct) {
		return []byte{}
	}
	col := make([]byte, 0, (len(ct)-i+k-1)/k)
	for j := i; j < len(ct); j += k {
		col = append(col, ct[j])
	}
	return col
}

// Repeating recovers a repeating key of length k, one column at a time, and
// decrypts ct with it.
func (b *Breaker) Repeating(ct []byte, k int) (Candidate, error) {
	if k < 1 {
		return Candidate{}, ErrKeySizeRange
	}
	key := make([]byte, k)
	var wg sync.WaitGroup
	wg.Add(k)
	for i := 0; i < k; i++ {
		go func(i int) {
			defer wg.Done()
			// Each goroutine owns key[i]
			key[i] = b.SingleByte(Column(ct, i, k)).Key[0]
		}(i)
	}
	wg.Wait()

	pt := obfs.XOR(ct, obfs.ExtendKey(key, len(ct)))
	return Candidate{
		Ciphertext: ct,
		Key:        key,
		Plaintext:  pt,
		Score:      b.scorer()(pt),
	}, nil
}

// Break finds the keysize in [min, max] and then recovers the key.
func (b *Breaker) Break(ct []byte, min, max int) (Candidate, KeySize, error) {
	if len(ct) == 0 {
		return Candidate{}, KeySize{}, ErrNoInput
	}
	ks, err := b.KeySize(ct, min, max)
	if err != nil {
		return Candidate{}, KeySize{}, err
	}
	c, err := b.Repeating(ct, ks.Size)
	if err != nil {
		return Candidate{}, ks, err
	}
	return c, ks, nil
}
