package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tobyxdd/xorcrack/pkg/breaker"
)

const defaultRepeatingFile = "6.txt"

var repeatingCmd = &cobra.Command{
	Use:     "repeating [file]",
	Short:   "Break repeating-key XOR (base64 ciphertext spread over lines)",
	Example: "./xorcrack repeating --max 40 6.txt",
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		c := mustLoadConfig()
		name := defaultRepeatingFile
		if len(args) > 0 {
			name = args[0]
		}
		top, _ := cmd.Flags().GetInt("top")
		f, err := openInput(name)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Fatal("Failed to open input")
		}
		defer f.Close()
		if err := breakRepeatingInput(cmd.OutOrStdout(), f, c, top); err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  name,
				"error": err,
			}).Fatal("Failed to break ciphertext")
		}
	},
}

func init() {
	repeatingCmd.Flags().Int("min", DefaultMinKeySize, "smallest keysize to try")
	repeatingCmd.Flags().Int("max", DefaultMaxKeySize, "largest keysize to try")
	repeatingCmd.Flags().Int("top", 0, "also print the N best keysize candidates")
	_ = viper.BindPFlag("min-keysize", repeatingCmd.Flags().Lookup("min"))
	_ = viper.BindPFlag("max-keysize", repeatingCmd.Flags().Lookup("max"))
}

func breakRepeatingInput(w io.Writer, r io.Reader, c *appConfig, top int) error {
	ct, err := readBase64Blob(r)
	if err != nil {
		return err
	}
	if top > 0 {
		ranked, err := breaker.RankKeySizes(ct, c.KeySize.Min, c.KeySize.Max)
		if err != nil {
			return err
		}
		if top < len(ranked) {
			ranked = ranked[:top]
		}
		for _, ks := range ranked {
			fmt.Fprintf(w, "%-11s%d\t%.4f\n", "Candidate:", ks.Size, ks.Score)
		}
	}
	cand, ks, err := c.newBreaker().Break(ct, c.KeySize.Min, c.KeySize.Max)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"keysize": ks.Size,
		"score":   ks.Score,
	}).Debug("Keysize found")
	fmt.Fprintf(w, "%-11s%d\n", "Keysize:", ks.Size)
	fmt.Fprintf(w, "%-11s%s\n", "Key:", displayKey(cand.Key))
	fmt.Fprintf(w, "%-11s%s\n", "Plaintext:", displayText(cand.Plaintext))
	return nil
}
