package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tobyxdd/xorcrack/pkg/breaker"
)

const defaultDetectFile = "4.txt"

var singleCmd = &cobra.Command{
	Use:     "single <hex>",
	Short:   "Break a single-byte XOR ciphertext",
	Example: "./xorcrack single 1b37373331363f78151b7f2b7834",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := mustLoadConfig()
		if err := breakSingle(cmd.OutOrStdout(), args[0], c.newBreaker()); err != nil {
			logrus.WithField("error", err).Fatal("Failed to break ciphertext")
		}
	},
}

var detectCmd = &cobra.Command{
	Use:     "detect [file]",
	Short:   "Find the line encrypted with single-byte XOR (one hex ciphertext per line)",
	Example: "./xorcrack detect 4.txt",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := mustLoadConfig()
		name := defaultDetectFile
		if len(args) > 0 {
			name = args[0]
		}
		d, err := breaker.NewDetector(c.newBreaker(), c.DetectCache)
		if err != nil {
			logrus.WithField("error", err).Fatal("Failed to create detector")
		}
		f, err := openInput(name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Fatal("Failed to open input")
		}
		defer f.Close()
		if err := detect(cmd.OutOrStdout(), f, d); err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Fatal("Failed to detect ciphertext")
		}
	},
}

func init() {
	detectCmd.Flags().Int("detect-cache", DefaultDetectCache, "number of line results to cache")
	_ = viper.BindPFlag("detect-cache", detectCmd.Flags().Lookup("detect-cache"))
}

func breakSingle(w io.Writer, s string, b *breaker.Breaker) error {
	ct, err := decodeHexArg(s)
	if err != nil {
		return err
	}
	c := b.SingleByte(ct)
	logrus.WithFields(logrus.Fields{
		"key":   c.Key[0],
		"score": c.Score,
	}).Debug("Single-byte key found")
	fmt.Fprintf(w, "%-11s%s\n", "Key:", displayKey(c.Key))
	fmt.Fprintf(w, "%-11s%d\n", "Score:", c.Score)
	fmt.Fprintf(w, "%-11s%s\n", "Plaintext:", displayText(c.Plaintext))
	return nil
}

func detect(w io.Writer, r io.Reader, d *breaker.Detector) error {
	lines, err := readHexLines(r)
	if err != nil {
		return err
	}
	c, idx, err := d.Detect(lines)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"line":  idx + 1,
		"key":   c.Key[0],
		"score": c.Score,
	}).Debug("Best line found")
	fmt.Fprintf(w, "%-11s%d\n", "Line:", idx+1)
	fmt.Fprintf(w, "%-11s%s\n", "Key:", displayKey(c.Key))
	fmt.Fprintf(w, "%-11s%d\n", "Score:", c.Score)
	fmt.Fprintf(w, "%-11s%s\n", "Plaintext:", displayText(c.Plaintext))
	return nil
}
