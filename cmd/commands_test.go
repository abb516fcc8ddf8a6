package main

import (
	"bytes"
	"encoding/base64"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobyxdd/xorcrack/pkg/breaker"
	"github.com/tobyxdd/xorcrack/pkg/codec"
	"github.com/tobyxdd/xorcrack/pkg/obfs"
)

func Test_rootCmdAuthors(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "Authors:\tThe xorcrack authors")
	assert.NotContains(t, rootCmd.Long, "apernet")
}

func Test_convert(t *testing.T) {
	var out bytes.Buffer
	in := "49276d206b696c6c696e6720796f757220627261696e206c696b65206120706f69736f6e6f7573206d757368726f6f6d\n"
	require.NoError(t, convert(&out, strings.NewReader(in), &codec.Encoder{Window: 6}))
	assert.Equal(t, "SSdtIGtpbGxpbmcgeW91ciBicmFpbiBsaWtlIGEgcG9pc29ub3VzIG11c2hyb29t\n", out.String())

	out.Reset()
	require.NoError(t, convert(&out, strings.NewReader(""), &codec.Encoder{}))
	assert.Empty(t, out.String())

	err := convert(&out, strings.NewReader("4g5"), &codec.Encoder{})
	assert.ErrorIs(t, err, codec.ErrMalformedHex)
}

func Test_fixedXOR(t *testing.T) {
	got, err := fixedXOR("1c0111001f010100061a024b53535009181c", "686974207468652062756c6c277320657965")
	require.NoError(t, err)
	assert.Equal(t, "746865206b696420646f6e277420706c6179", got)

	_, err = fixedXOR("1c01", "68")
	assert.ErrorIs(t, err, errLengthMismatch)
	_, err = fixedXOR("1c0", "68")
	assert.ErrorIs(t, err, errMalformedHex)
}

func Test_encrypt(t *testing.T) {
	var out bytes.Buffer
	in := "Burning 'em, if you ain't quick and nimble\nI go crazy when I hear a cymbal"
	require.NoError(t, encrypt(&out, strings.NewReader(in), []byte("ICE")))
	assert.Equal(t, "0b3637272a2b2e63622c2e69692a23693a2a3c6324202d623d63343c2a26226324272765272a282b2f20430a652e2c652a3124333a653e2b2027630c692b20283165286326302e27282f\n", out.String())

	err := encrypt(&out, strings.NewReader(in), nil)
	var ce configError
	assert.ErrorAs(t, err, &ce)
}

func Test_breakSingle(t *testing.T) {
	var out bytes.Buffer
	err := breakSingle(&out, "1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736", defaultConfig().newBreaker())
	require.NoError(t, err)
	assert.Contains(t, out.String(), `Key:       "X" (0x58)`)
	assert.Contains(t, out.String(), "Plaintext: Cooking MC's like a pound of bacon\n")
}

func Test_detect(t *testing.T) {
	in := strings.Join([]string{
		"ffd8ffe000104a4649460001",
		"",
		"1b37373331363f78151b7f2b783431333d78397828372d363c78373e783a393b3736",
		"ffd8ffe000104a4649460001",
	}, "\n")
	d, err := breaker.NewDetector(defaultConfig().newBreaker(), 4)
	require.NoError(t, err)
	var out bytes.Buffer
	require.NoError(t, detect(&out, strings.NewReader(in), d))
	assert.Contains(t, out.String(), "Line:      2\n")
	assert.Contains(t, out.String(), "Plaintext: Cooking MC's like a pound of bacon\n")

	err = detect(&out, strings.NewReader("\n"), d)
	assert.ErrorIs(t, err, breaker.ErrNoInput)
}

func Test_breakRepeatingInput(t *testing.T) {
	prose, err := ioutil.ReadFile("testdata/prose.txt")
	require.NoError(t, err)
	ct := obfs.XORObfuscator("ICE").Obfuscate(prose)
	enc := base64.StdEncoding.EncodeToString(ct)
	var sb strings.Builder
	for len(enc) > 60 {
		sb.WriteString(enc[:60] + "\n")
		enc = enc[60:]
	}
	sb.WriteString(enc + "\n")

	c := defaultConfig()
	c.KeySize.Max = 12
	var out bytes.Buffer
	require.NoError(t, breakRepeatingInput(&out, strings.NewReader(sb.String()), c, 3))
	assert.Equal(t, 3, strings.Count(out.String(), "Candidate:"))
	assert.Contains(t, out.String(), "Plaintext: "+string(prose))

	err = breakRepeatingInput(&out, strings.NewReader("not base64!"), c, 0)
	assert.ErrorIs(t, err, errMalformedBase64)
}

func Test_breakRepeatingInput_TooShort(t *testing.T) {
	// No keysize has a pair of full chunks
	c := defaultConfig()
	var out bytes.Buffer
	err := breakRepeatingInput(&out, strings.NewReader(base64.StdEncoding.EncodeToString([]byte{1})), c, 0)
	assert.ErrorIs(t, err, breaker.ErrNoKeySize)
}
