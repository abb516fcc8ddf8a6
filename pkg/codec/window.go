package codec

import (
	"fmt"

	"github.com/docker/go-units"
)

// DefaultWindow is the number of raw bytes read per window.
const DefaultWindow = 6 * 128

// ParseWindow parses a human readable window size ("768", "6k", "1536B").
// The result must be a positive multiple of 6.
func ParseWindow(s string) (int, error) {
	if s == "" {
		return DefaultWindow, nil
	}
	n, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrWindow, err)
	}
	if err := checkWindow(n); err != nil {
		return 0, err
	}
	return int(n), nil
}

func checkWindow(n int64) error {
	if n <= 0 || n%6 != 0 {
		return fmt.Errorf("%w: %d is not a positive multiple of 6", ErrWindow, n)
	}
	return nil
}
