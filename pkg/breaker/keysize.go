package breaker

import (
	"math/bits"
	"sort"
)

// KeySize is a trial repeating-key length. Score is the mean Hamming distance
// per byte between adjacent chunks; lower is better.
type KeySize struct {
	Size  int
	Score float64
}

// HammingDistance returns the number of differing bits between two buffers.
// Bytes past the end of the shorter buffer count as 8 differing bits each.
func HammingDistance(a, b []byte) int {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	var n int
	for i := range short {
		n += bits.OnesCount8(short[i] ^ long[i])
	}
	return n + 8*(len(long)-len(short))
}

// Chunks divides buf into consecutive chunks of size bytes. The last chunk
// may be shorter. The chunks share buf's memory.
func Chunks(buf []byte, size int) [][]byte {
	if size <= 0 {
		return nil
	}
	var chunks [][]byte
	for len(buf) > 0 {
		n := size
		if n > len(buf) {
			n = len(buf)
		}
		chunks = append(chunks, buf[:n:n])
		buf = buf[n:]
	}
	return chunks
}

// KeySizeScore returns the normalized distance between adjacent full chunks of
// size k. It reports false if ct has fewer than two full chunks.
func KeySizeScore(ct []byte, k int) (float64, bool) {
	if k <= 0 {
		return 0, false
	}
	chunks := Chunks(ct, k)
	var dist, pairs int
	for i := 0; i+1 < len(chunks); i++ {
		if len(chunks[i+1]) != k {
			// Short trailing chunk is not compared
			break
		}
		dist += HammingDistance(chunks[i], chunks[i+1])
		pairs++
	}
	if pairs == 0 {
		return 0, false
	}
	return float64(dist) / float64(k*pairs), true
}

func checkRange(min, max int) error {
	if min < 1 || max < min {
		return ErrKeySizeRange
	}
	return nil
}

// KeySize returns the keysize in [min, max] with the smallest score.
// Ties go to the smaller keysize.
func (b *Breaker) KeySize(ct []byte, min, max int) (KeySize, error) {
	if err := checkRange(min, max); err != nil {
		return KeySize{}, err
	}
	best := KeySize{}
	for k := min; k <= max; k++ {
		b.Metrics.addKeySizeTrial()
		s, ok := KeySizeScore(ct, k)
		if !ok {
			continue
		}
		if best.Size == 0 || s < best.Score {
			best = KeySize{Size: k, Score: s}
		}
	}
	if best.Size == 0 {
		return KeySize{}, ErrNoKeySize
	}
	return best, nil
}

// RankKeySizes scores every keysize in [min, max] and sorts them best first.
// Keysizes with equal scores stay in ascending order.
func RankKeySizes(ct []byte, min, max int) ([]KeySize, error) {
	if err := checkRange(min, max); err != nil {
		return nil, err
	}
	var ranked []KeySize
	for k := min; k <= max; k++ {
		if s, ok := KeySizeScore(ct, k); ok {
			ranked = append(ranked, KeySize{Size: k, Score: s})
		}
	}
	if len(ranked) == 0 {
		return nil, ErrNoKeySize
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})
	return ranked, nil
}
