package screener

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MACDConfig holds the exponential moving average windows for the MACD scan.
type MACDConfig struct {
	FastLength   int `json:"fastLength" yaml:"fastLength"`
	SlowLength   int `json:"slowLength" yaml:"slowLength"`
	SignalLength int `json:"signalLength" yaml:"signalLength"`
}

// RSIConfig holds the smoothing period and the overbought/oversold lines for
// the RSI scan. Only the lower line drives the buy signal; the upper line is
// carried for a future overbought exit scan.
type RSIConfig struct {
	Period  int     `json:"period" yaml:"period"`
	UpLine  float64 `json:"upLine" yaml:"upLine"`
	LowLine float64 `json:"lowLine" yaml:"lowLine"`
}

// Config is the parameter bag for one screening run. It is passed explicitly
// into every indicator invocation; nothing reads ambient configuration.
type Config struct {
	// InputDir holds one CSV file per symbol; the file stem is the symbol.
	InputDir string `json:"inputDir" yaml:"inputDir"`

	// OutputFile is the consolidated append-only signal log.
	OutputFile string `json:"outputFile" yaml:"outputFile"`

	// Workers caps concurrent symbol scans. Zero or one runs sequentially.
	Workers int `json:"workers,omitempty" yaml:"workers,omitempty"`

	MACD MACDConfig `json:"macd" yaml:"macd"`
	RSI  RSIConfig  `json:"rsi" yaml:"rsi"`
}

// DefaultConfig returns the conventional MACD(12,26,9) and RSI(14, 70/30)
// parameters with no paths set.
func DefaultConfig() *Config {
	return &Config{
		Workers: 1,
		MACD: MACDConfig{
			FastLength:   12,
			SlowLength:   26,
			SignalLength: 9,
		},
		RSI: RSIConfig{
			Period:  14,
			UpLine:  70,
			LowLine: 30,
		},
	}
}

// LoadConfig reads a yaml config file over the defaults, so omitted fields
// keep their conventional values.
func LoadConfig(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "can not read config file %s", path)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", path)
	}

	if config.Workers < 1 {
		config.Workers = 1
	}

	return config, nil
}

// Validate checks the run-level fields. Indicator parameters are validated at
// the indicator boundary so the engine stays testable with arbitrary values.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("inputDir is not set")
	}
	if c.OutputFile == "" {
		return errors.New("outputFile is not set")
	}
	return nil
}
