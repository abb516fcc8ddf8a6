package breaker

import "errors"

var (
	ErrNoInput      = errors.New("no ciphertext")
	ErrKeySizeRange = errors.New("invalid keysize range")
	ErrNoKeySize    = errors.New("no keysize could be scored")
)
