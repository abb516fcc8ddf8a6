package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tobyxdd/xorcrack/pkg/breaker"
)

const (
	desc    = "Hex to base64 streaming and XOR cipher breaking toolkit"
	authors = "The xorcrack authors"
)

var (
	appVersion = "Unknown"
	appCommit  = "Unknown"
	appDate    = "Unknown"
)

var (
	promReg = prometheus.NewRegistry()
	metrics = breaker.NewMetrics(promReg)
)

var rootCmd = &cobra.Command{
	Use:     "xorcrack",
	Long:    fmt.Sprintf("%s\n\nVersion:\t%s\nBuildDate:\t%s\nCommitHash:\t%s\nAuthors:\t%s", desc, appVersion, appDate, appCommit, authors),
	Example: "./xorcrack repeating 6.txt",
	Version: fmt.Sprintf("%s %s %s", appVersion, appDate, appCommit),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// log config; stdout is reserved for results
		logrus.SetOutput(os.Stderr)
		if lvl, err := logrus.ParseLevel(viper.GetString("log-level")); err == nil {
			logrus.SetLevel(lvl)
		} else {
			logrus.SetLevel(logrus.InfoLevel)
		}

		if strings.ToLower(viper.GetString("log-format")) == "json" {
			logrus.SetFormatter(&logrus.JSONFormatter{
				TimestampFormat: viper.GetString("log-timestamp"),
			})
		} else {
			logrus.SetFormatter(&nested.Formatter{
				FieldsOrder: []string{
					"version", "config", "file", "line",
					"window", "keysize", "score", "key",
					"field", "error",
				},
				TimestampFormat: viper.GetString("log-timestamp"),
			})
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		path := viper.GetString("metrics-file")
		if path == "" {
			return
		}
		if err := prometheus.WriteToTextfile(path, promReg); err != nil {
			logrus.WithFields(logrus.Fields{
				"file":  path,
				"error": err,
			}).Error("Failed to write metrics")
		}
	},
}

func init() {
	// disable cmd sorting
	cobra.EnableCommandSorting = false

	// add global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (JSON5)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level")
	rootCmd.PersistentFlags().String("log-timestamp", time.RFC3339, "log timestamp format")
	rootCmd.PersistentFlags().String("log-format", "txt", "log output format (txt/json)")
	rootCmd.PersistentFlags().String("metrics-file", "", "write search metrics to this file on exit")
	rootCmd.PersistentFlags().String("scorer", "", "plaintext scorer (english/frequency)")

	// add to root cmd
	rootCmd.AddCommand(hex2b64Cmd, xorCmd, encryptCmd, singleCmd, detectCmd, repeatingCmd, versionCmd)

	// bind flag
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log-timestamp", rootCmd.PersistentFlags().Lookup("log-timestamp"))
	_ = viper.BindPFlag("log-format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("metrics-file", rootCmd.PersistentFlags().Lookup("metrics-file"))
	_ = viper.BindPFlag("scorer", rootCmd.PersistentFlags().Lookup("scorer"))

	// bind env
	_ = viper.BindEnv("config", "XORCRACK_CONFIG")
	_ = viper.BindEnv("log-level", "XORCRACK_LOG_LEVEL", "LOGGING_LEVEL")
	_ = viper.BindEnv("log-timestamp", "XORCRACK_LOG_TIMESTAMP", "LOGGING_TIMESTAMP_FORMAT")
	_ = viper.BindEnv("log-format", "XORCRACK_LOG_FORMAT", "LOGGING_FORMATTER")
	_ = viper.BindEnv("metrics-file", "XORCRACK_METRICS_FILE")
	_ = viper.BindEnv("scorer", "XORCRACK_SCORER")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}
