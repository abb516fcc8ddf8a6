package breaker

import (
	lru "github.com/hashicorp/golang-lru"
)

// Detector finds the one line, among many, that was encrypted with single-byte XOR.
type Detector struct {
	breaker *Breaker
	cache   *lru.Cache
}

// NewDetector returns a detector that remembers up to cacheSize results.
// A cacheSize of zero disables the cache.
func NewDetector(b *Breaker, cacheSize int) (*Detector, error) {
	if b == nil {
		b = &Breaker{}
	}
	d := &Detector{breaker: b}
	if cacheSize > 0 {
		c, err := lru.New(cacheSize)
		if err != nil {
			return nil, err
		}
		d.cache = c
	}
	return d, nil
}

// Detect breaks every line and returns the best candidate with its line index.
// Ties keep the earliest line.
func (d *Detector) Detect(lines [][]byte) (Candidate, int, error) {
	if len(lines) == 0 {
		return Candidate{}, -1, ErrNoInput
	}
	var (
		best  Candidate
		index = -1
	)
	for i, line := range lines {
		c := d.single(line)
		if index < 0 || c.Score > best.Score {
			best = c
			index = i
		}
	}
	return best, index, nil
}

func (d *Detector) single(line []byte) Candidate {
	if d.cache == nil {
		return d.breaker.SingleByte(line)
	}
	key := string(line)
	if v, ok := d.cache.Get(key); ok {
		d.breaker.Metrics.addCacheHit()
		c := v.(Candidate)
		c.Ciphertext = line
		c.Key = append([]byte{}, c.Key...)
		c.Plaintext = append([]byte{}, c.Plaintext...)
		return c
	}
	c := d.breaker.SingleByte(line)
	stored := c
	stored.Key = append([]byte{}, c.Key...)
	stored.Plaintext = append([]byte{}, c.Plaintext...)
	d.cache.Add(key, stored)
	return c
}
