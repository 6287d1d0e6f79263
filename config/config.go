package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFilename = "btctestkit.yml"
	envPrefix             = "BTCTESTKIT"
)

var (
	defaultAppDataDir = btcutil.AppDataDir("btctestkit", false)
	defaultConfigFile = filepath.Join(defaultAppDataDir, defaultConfigFilename)
)

// Config defines the top level configuration of the tooling
type Config struct {
	Common   CommonConfig   `mapstructure:"common"`
	BTC      BTCConfig      `mapstructure:"btc"`
	Accounts AccountsConfig `mapstructure:"accounts"`
	Harness  HarnessConfig  `mapstructure:"harness"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Common.Validate(); err != nil {
		return fmt.Errorf("invalid config in common: %w", err)
	}

	if err := cfg.BTC.Validate(); err != nil {
		return fmt.Errorf("invalid config in btc: %w", err)
	}

	if err := cfg.Accounts.Validate(); err != nil {
		return fmt.Errorf("invalid config in accounts: %w", err)
	}

	if err := cfg.Harness.Validate(); err != nil {
		return fmt.Errorf("invalid config in harness: %w", err)
	}

	if err := cfg.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid config in metrics: %w", err)
	}

	return nil
}

func (cfg *Config) CreateLogger() (*zap.Logger, error) {
	return cfg.Common.CreateLogger()
}

func DefaultConfigFile() string {
	return defaultConfigFile
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Common:   DefaultCommonConfig(),
		BTC:      DefaultBTCConfig(),
		Accounts: DefaultAccountsConfig(),
		Harness:  DefaultHarnessConfig(),
		Metrics:  DefaultMetricsConfig(),
	}
}

// New returns a fully parsed Config object from a given file. Values can be
// overridden through BTCTESTKIT_<SECTION>_<KEY> environment variables, e.g.
// BTCTESTKIT_ACCOUNTS_FIXTURES_FILE.
func New(configFile string) (Config, error) {
	if _, err := os.Stat(configFile); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no config file found at %s", configFile)
		}
		return Config{}, err
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// SaveToYAML saves the configuration to a YAML file
func (cfg *Config) SaveToYAML(filePath string) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	wrappedConfig := MapstructureYAMLWrapper{Value: cfg}

	if err := enc.Encode(wrappedConfig); err != nil {
		return fmt.Errorf("error marshaling config to YAML: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("error closing YAML encoder: %w", err)
	}

	if err := os.WriteFile(filePath, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("error writing YAML to file: %w", err)
	}

	return nil
}

// MapstructureYAMLWrapper emits YAML keys from mapstructure tags so a dumped
// config can be read back by viper.
type MapstructureYAMLWrapper struct {
	Value interface{}
}

func (w MapstructureYAMLWrapper) MarshalYAML() (interface{}, error) {
	val := reflect.ValueOf(w.Value)

	if val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil, nil
		}
		val = val.Elem()
	}

	if val.Kind() != reflect.Struct {
		return w.Value, nil
	}

	result := make(map[string]interface{})
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}

		tag := field.Tag.Get("mapstructure")
		if tag == "" || tag == "-" {
			continue
		}
		name := strings.Split(tag, ",")[0]

		fieldValue := val.Field(i).Interface()
		if val.Field(i).Kind() == reflect.Struct ||
			(val.Field(i).Kind() == reflect.Ptr && !val.Field(i).IsNil() && val.Field(i).Elem().Kind() == reflect.Struct) {
			fieldValue = MapstructureYAMLWrapper{Value: fieldValue}
		}

		result[name] = fieldValue
	}

	return result, nil
}
