package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tobyxdd/xorcrack/pkg/codec"
)

var hex2b64Cmd = &cobra.Command{
	Use:     "hex2b64 [file...]",
	Short:   "Stream hex input as base64",
	Example: "echo 49276d | ./xorcrack hex2b64",
	Run: func(cmd *cobra.Command, args []string) {
		c := mustLoadConfig()
		enc := &codec.Encoder{Window: c.window()}
		logrus.WithField("window", enc.Window).Debug("Encoder ready")
		if len(args) == 0 {
			args = []string{"-"}
		}
		for _, name := range args {
			if err := convertFile(cmd.OutOrStdout(), name, enc); err != nil {
				logrus.WithField("file", name).Fatalf("=( %v", err)
			}
		}
	},
}

func init() {
	hex2b64Cmd.Flags().StringP("window", "w", "", "read window, a multiple of 6 (e.g. 768, 6k)")
	_ = viper.BindPFlag("window", hex2b64Cmd.Flags().Lookup("window"))
}

func convertFile(w io.Writer, name string, enc *codec.Encoder) error {
	f, err := openInput(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return convert(w, f, enc)
}

// convert encodes one input and ends it with a newline if anything was written.
func convert(w io.Writer, r io.Reader, enc *codec.Encoder) error {
	n, err := enc.Encode(w, r)
	if err != nil {
		return err
	}
	if n > 0 {
		_, err = fmt.Fprintln(w)
	}
	return err
}
