package codec

import (
	"io"
)

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	padChar  = '='

	// hex characters per base64 group
	groupLen = 6
)

// Encoder converts a stream of ASCII hex into base64, one window at a time.
// The stream ends at the first window that has a non-hex terminator after its
// last hex digit, or that holds no hex digit at all.
type Encoder struct {
	// Window is the number of raw bytes read at once. Zero means DefaultWindow.
	Window int
}

func NewEncoder(window int) (*Encoder, error) {
	if err := checkWindow(int64(window)); err != nil {
		return nil, err
	}
	return &Encoder{Window: window}, nil
}

// Encode reads hex from src and writes base64 to dst.
// It returns the number of bytes written to dst.
func (e *Encoder) Encode(dst io.Writer, src io.Reader) (int64, error) {
	window := e.Window
	if window == 0 {
		window = DefaultWindow
	}
	if err := checkWindow(int64(window)); err != nil {
		return 0, err
	}
	in := make([]byte, window)
	out := make([]byte, window/groupLen*4)
	var written, offset int64
	for {
		n, err := io.ReadFull(src, in)
		if err == io.EOF {
			return written, nil
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return written, &IOError{Op: "read", Err: err}
		}
		pos := lastHexDigit(in[:n])
		if pos < 0 {
			// Nothing but terminators
			return written, nil
		}
		m, err := encodeWindow(out, in[:pos+1], offset)
		if err != nil {
			return written, err
		}
		wn, err := dst.Write(out[:m])
		written += int64(wn)
		if err != nil {
			return written, &IOError{Op: "write", Err: err}
		}
		if pos+1 < n {
			return written, nil
		}
		offset += int64(n)
	}
}

// encodeWindow encodes hex text into dst and returns the number of symbols.
// base is the stream offset of hex[0], used for error reporting.
func encodeWindow(dst, hex []byte, base int64) (int, error) {
	var n int
	for i := 0; i < len(hex); i += groupLen {
		end := i + groupLen
		if end > len(hex) {
			end = len(hex)
		}
		if err := encodeGroup(dst[n:n+4], hex[i:end], base+int64(i)); err != nil {
			return 0, err
		}
		n += 4
	}
	return n, nil
}

// encodeGroup packs up to 6 hex characters into 24 bits and emits 4 symbols.
// Missing trailing nibbles are zero; symbols past len(group)/2 become padding.
func encodeGroup(dst, group []byte, base int64) error {
	var x uint32
	for i := 0; i < groupLen; i++ {
		x <<= 4
		if i < len(group) {
			v, ok := nibble(group[i])
			if !ok {
				return &InvalidCharError{Offset: base + int64(i), Char: group[i]}
			}
			x |= uint32(v)
		}
	}
	data := len(group) / 2
	for i := 0; i < 4; i++ {
		if i <= data {
			dst[i] = alphabet[(x>>(18-6*uint(i)))&0x3f]
		} else {
			dst[i] = padChar
		}
	}
	return nil
}

func lastHexDigit(b []byte) int {
	for i := len(b) - 1; i >= 0; i-- {
		if _, ok := nibble(b[i]); ok {
			return i
		}
	}
	return -1
}

func nibble(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
