package app

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by the CLI,
// e.g. SEALBOX_SECRET_KEY.
const EnvPrefix = "SEALBOX"

// Config holds the CLI inputs. Keys are 64 hex characters, nonces 48.
type Config struct {
	PublicKey  string `mapstructure:"public-key" validate:"omitempty,hexadecimal,len=64"`
	SecretKey  string `mapstructure:"secret-key" validate:"omitempty,hexadecimal,len=64"`
	PeerKey    string `mapstructure:"peer-key"   validate:"omitempty,hexadecimal,len=64"`
	Nonce      string `mapstructure:"nonce"      validate:"omitempty,hexadecimal,len=48"`
	Precompute bool   `mapstructure:"precompute"`
	LogLevel   string `mapstructure:"log-level"  validate:"omitempty,oneof=debug info warn error"`
}

// NewViper returns a viper instance reading SEALBOX_* environment variables,
// with dashes in keys mapped to underscores.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig decodes and validates the configuration held by v.
func LoadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	for _, key := range []string{"public-key", "secret-key", "peer-key", "nonce", "precompute", "log-level"} {
		// AutomaticEnv alone is not consulted by Unmarshal for unset keys.
		if err := v.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("binding %s: %w", key, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate validates the configuration against the struct tags.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}
