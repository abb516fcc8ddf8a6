package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tobyxdd/xorcrack/pkg/obfs"
)

var errLengthMismatch = errors.New("buffers must have equal length")

var xorCmd = &cobra.Command{
	Use:     "xor <hex> <hex>",
	Short:   "XOR two equal-length hex buffers",
	Example: "./xorcrack xor 1c0111001f01 686974207468",
	Args:    cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		out, err := fixedXOR(args[0], args[1])
		if err != nil {
			logrus.WithField("error", err).Fatal("Failed to XOR buffers")
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
	},
}

var encryptCmd = &cobra.Command{
	Use:     "encrypt [file...]",
	Short:   "Encrypt input with repeating-key XOR and print hex",
	Example: "./xorcrack encrypt --key ICE plain.txt",
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")
		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, name := range args {
			if err := encryptFile(cmd.OutOrStdout(), name, []byte(key)); err != nil {
				logrus.WithFields(logrus.Fields{
					"file":  name,
					"error": err,
				}).Fatal("Failed to encrypt input")
			}
		}
	},
}

func init() {
	encryptCmd.Flags().StringP("key", "k", "", "repeating key")
	_ = encryptCmd.MarkFlagRequired("key")
}

func fixedXOR(a, b string) (string, error) {
	ab, err := decodeHexArg(a)
	if err != nil {
		return "", err
	}
	bb, err := decodeHexArg(b)
	if err != nil {
		return "", err
	}
	if len(ab) != len(bb) {
		return "", errLengthMismatch
	}
	return hex.EncodeToString(obfs.XOR(ab, bb)), nil
}

func encryptFile(w io.Writer, name string, key []byte) error {
	f, err := openInput(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return encrypt(w, f, key)
}

func encrypt(w io.Writer, r io.Reader, key []byte) error {
	if len(key) == 0 {
		return configError{Field: "key", Err: errors.New("empty key")}
	}
	p, err := ioutil.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, hex.EncodeToString(obfs.XORObfuscator(key).Obfuscate(p)))
	return err
}
