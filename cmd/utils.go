package main

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	errMalformedHex    = errors.New("malformed hex")
	errMalformedBase64 = errors.New("malformed base64")
)

type configError struct {
	Field string
	Err   error
}

func (e configError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Err)
}

func (e configError) Unwrap() error {
	return e.Err
}

func mustLoadConfig() *appConfig {
	c, err := loadConfig()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file":  viper.GetString("config"),
			"error": err,
		}).Fatal("Failed to load configuration")
	}
	logrus.WithField("config", c.String()).Debug("Configuration loaded")
	return c
}

// openInput opens name for reading. "-" is standard input.
func openInput(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func decodeHexArg(s string) ([]byte, error) {
	b, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedHex, err)
	}
	return b, nil
}

// readHexLines decodes one hex ciphertext per line, skipping blank lines.
func readHexLines(r io.Reader) ([][]byte, error) {
	var lines [][]byte
	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 {
			continue
		}
		b, err := hex.DecodeString(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", errMalformedHex, n, err)
		}
		lines = append(lines, b)
	}
	return lines, scanner.Err()
}

// readBase64Blob joins all lines and decodes them as one base64 blob.
func readBase64Blob(r io.Reader) ([]byte, error) {
	var sb strings.Builder
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		sb.WriteString(strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(sb.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedBase64, err)
	}
	return b, nil
}

// displayText returns b as text, or a marker and its hex if b is not UTF-8.
func displayText(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return "<invalid UTF-8> " + hex.EncodeToString(b)
}

func displayKey(key []byte) string {
	return fmt.Sprintf("%q (0x%x)", key, key)
}
