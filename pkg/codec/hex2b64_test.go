package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	mushroomHex = "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d"
	mushroomB64 = "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t"
)

func encodeString(t *testing.T, window int, s string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	n, err := (&Encoder{Window: window}).Encode(&out, strings.NewReader(s))
	assert.Equal(t, int64(out.Len()), n)
	return out.String(), err
}

func TestEncoder_Encode(t *testing.T) {
	tests := []struct {
		name   string
		window int
		in     string
		want   string
	}{
		{name: "mushroom small window", window: 6, in: mushroomHex, want: mushroomB64},
		{name: "mushroom default window", window: 0, in: mushroomHex, want: mushroomB64},
		{name: "newline terminator", window: 6, in: mushroomHex + "\n", want: mushroomB64},
		{name: "crlf terminator", window: 12, in: mushroomHex + "\r\n", want: mushroomB64},
		{name: "uppercase", window: 6, in: strings.ToUpper(mushroomHex), want: mushroomB64},
		{name: "empty", window: 6, in: "", want: ""},
		{name: "terminator only", window: 6, in: "\r\n", want: ""},
		{name: "one byte", window: 6, in: "49", want: "SQ=="},
		{name: "two bytes", window: 6, in: "4927\n", want: "SSc="},
		{name: "three bytes", window: 6, in: "49276d", want: "SSdt"},
		{name: "terminator on window boundary", window: 6, in: "49276d\n", want: "SSdt"},
		{name: "odd digit count", window: 6, in: "492", want: "SS=="},
		{name: "single digit", window: 6, in: "4", want: "Q==="},
		{name: "input after terminator is ignored", window: 12, in: "4927\nzzzzzz", want: "SSc="},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encodeString(t, tt.window, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncoder_MatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, window := range []int{6, 12, 60, DefaultWindow} {
		for n := 0; n < 100; n++ {
			buf := make([]byte, n)
			r.Read(buf)
			got, err := encodeString(t, window, hex.EncodeToString(buf)+"\n")
			require.NoError(t, err)
			assert.Equal(t, base64.StdEncoding.EncodeToString(buf), got, "window %d, len %d", window, n)
		}
	}
}

func TestEncoder_MalformedHex(t *testing.T) {
	var out bytes.Buffer
	_, err := (&Encoder{Window: 6}).Encode(&out, strings.NewReader("49276d2x6b69\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedHex))
	var ice *InvalidCharError
	require.True(t, errors.As(err, &ice))
	assert.Equal(t, int64(7), ice.Offset)
	assert.Equal(t, byte('x'), ice.Char)
	// The first window was already flushed, the broken one was not
	assert.Equal(t, "SSdt", out.String())
}

type failingReader struct {
	data []byte
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

type failingWriter struct{ err error }

func (w failingWriter) Write(p []byte) (int, error) { return 0, w.err }

func TestEncoder_IOErrors(t *testing.T) {
	boom := errors.New("boom")

	var out bytes.Buffer
	_, err := (&Encoder{Window: 6}).Encode(&out, &failingReader{data: []byte("49276d4927"), err: boom})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, boom))
	assert.Equal(t, "SSdt", out.String())

	_, err = (&Encoder{Window: 6}).Encode(failingWriter{err: boom}, strings.NewReader(mushroomHex))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, boom))
}

func TestEncoder_InvalidWindow(t *testing.T) {
	for _, w := range []int{-6, 7, 8} {
		_, err := (&Encoder{Window: w}).Encode(io.Discard, strings.NewReader(mushroomHex))
		assert.True(t, errors.Is(err, ErrWindow), "window %d", w)
		_, err = NewEncoder(w)
		assert.True(t, errors.Is(err, ErrWindow), "window %d", w)
	}
	e, err := NewEncoder(12)
	require.NoError(t, err)
	assert.Equal(t, 12, e.Window)
}

func TestParseWindow(t *testing.T) {
	tests := []struct {
		name    string
		s       string
		want    int
		wantErr bool
	}{
		{name: "empty", s: "", want: DefaultWindow},
		{name: "plain", s: "768", want: 768},
		{name: "bytes", s: "1536B", want: 1536},
		{name: "kilo", s: "6k", want: 6144},
		{name: "not multiple", s: "7", wantErr: true},
		{name: "zero", s: "0", wantErr: true},
		{name: "garbage", s: "lots", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWindow(tt.s)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrWindow))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
