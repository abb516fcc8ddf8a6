package main

import (
	"errors"
	"fmt"
	"io/ioutil"

	"github.com/spf13/viper"
	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/tobyxdd/xorcrack/pkg/breaker"
	"github.com/tobyxdd/xorcrack/pkg/codec"
	"github.com/tobyxdd/xorcrack/pkg/score"
)

const (
	DefaultMinKeySize  = 2
	DefaultMaxKeySize  = 40
	DefaultDetectCache = 1024
)

type appConfig struct {
	Window  string `json:"window"`
	KeySize struct {
		Min int `json:"min"`
		Max int `json:"max"`
	} `json:"keysize"`
	Scorer      string `json:"scorer"`
	DetectCache int    `json:"detect_cache"`
}

func defaultConfig() *appConfig {
	c := &appConfig{
		Window:      "768",
		Scorer:      score.NameEnglish,
		DetectCache: DefaultDetectCache,
	}
	c.KeySize.Min = DefaultMinKeySize
	c.KeySize.Max = DefaultMaxKeySize
	return c
}

func (c *appConfig) Check() error {
	if _, err := codec.ParseWindow(c.Window); err != nil {
		return configError{Field: "window", Err: err}
	}
	if c.KeySize.Min < 1 {
		return configError{Field: "keysize.min", Err: errors.New("must be at least 1")}
	}
	if c.KeySize.Max < c.KeySize.Min {
		return configError{Field: "keysize.max", Err: errors.New("smaller than keysize.min")}
	}
	if _, err := score.ByName(c.Scorer); err != nil {
		return configError{Field: "scorer", Err: err}
	}
	if c.DetectCache < 0 {
		return configError{Field: "detect_cache", Err: errors.New("negative cache size")}
	}
	return nil
}

func (c *appConfig) String() string {
	return fmt.Sprintf("%+v", *c)
}

// parseConfig reads JSON5 on top of the defaults. Missing fields keep their default.
func parseConfig(cb []byte) (*appConfig, error) {
	c := defaultConfig()
	err := json5.Unmarshal(cb, c)
	if err != nil {
		return nil, err
	}
	return c, c.Check()
}

// loadConfig builds the effective config: defaults, then the config file, then
// any flag or environment variable that was set explicitly.
func loadConfig() (*appConfig, error) {
	c := defaultConfig()
	if path := viper.GetString("config"); path != "" {
		cb, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		c, err = parseConfig(cb)
		if err != nil {
			return nil, err
		}
	}
	if viper.IsSet("window") {
		c.Window = viper.GetString("window")
	}
	if viper.IsSet("min-keysize") {
		c.KeySize.Min = viper.GetInt("min-keysize")
	}
	if viper.IsSet("max-keysize") {
		c.KeySize.Max = viper.GetInt("max-keysize")
	}
	if viper.IsSet("scorer") && viper.GetString("scorer") != "" {
		c.Scorer = viper.GetString("scorer")
	}
	if viper.IsSet("detect-cache") {
		c.DetectCache = viper.GetInt("detect-cache")
	}
	return c, c.Check()
}

func (c *appConfig) newBreaker() *breaker.Breaker {
	fn, _ := score.ByName(c.Scorer)
	return &breaker.Breaker{Score: fn, Metrics: metrics}
}

func (c *appConfig) window() int {
	n, _ := codec.ParseWindow(c.Window)
	return n
}
