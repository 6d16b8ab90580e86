// Package config loads handler and store settings for funcy tools from
// YAML, TOML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-funcy"
	"github.com/itsatony/go-funcy/handlers"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Config describes which handlers a tool registers and where it keeps
// named templates.
type Config struct {
	// Values are static texts, each served under its key.
	Values map[string]string `yaml:"values" toml:"values" json:"values,omitempty" jsonschema:"description=Static text handlers keyed by invocation name"`

	// Builtins lists built-in handlers to register by name.
	Builtins []string `yaml:"builtins" toml:"builtins" json:"builtins,omitempty" jsonschema:"description=Built-in handlers to register,enum=echo,enum=counter,enum=env,enum=upper,enum=lower,enum=now,enum=sanitize"`

	// Env configures the env handler.
	Env EnvConfig `yaml:"env" toml:"env" json:"env" jsonschema:"description=Environment variable handler"`

	// Store selects the template store.
	Store StoreConfig `yaml:"store" toml:"store" json:"store" jsonschema:"description=Named template store"`

	// LogLevel is a zap level name.
	LogLevel string `yaml:"log_level" toml:"log_level" json:"log_level,omitempty" jsonschema:"description=Log level,enum=debug,enum=info,enum=warn,enum=error"`
}

// EnvConfig configures the env handler.
type EnvConfig struct {
	Enabled bool     `yaml:"enabled" toml:"enabled" json:"enabled" jsonschema:"description=Register the env handler"`
	Allow   []string `yaml:"allow" toml:"allow" json:"allow,omitempty" jsonschema:"description=Readable variables; empty allows all"`
}

// StoreConfig selects a storage driver.
type StoreConfig struct {
	Driver string `yaml:"driver" toml:"driver" json:"driver,omitempty" jsonschema:"enum=memory,enum=filesystem,enum=postgres,default=memory"`
	DSN    string `yaml:"dsn" toml:"dsn" json:"dsn,omitempty" jsonschema:"description=Directory for filesystem or connection string for postgres"`
}

// Default returns the configuration used when no file is given: every
// built-in except env, memory store, info logging.
func Default() *Config {
	var builtins []string
	for _, name := range handlers.BuiltinNames() {
		if name != handlers.NameEnv {
			builtins = append(builtins, name)
		}
	}
	return &Config{
		Builtins: builtins,
		Store:    StoreConfig{Driver: DefaultDriver},
		LogLevel: DefaultLogLevel,
	}
}

// Load reads and validates the config file at path. The format follows the
// file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeConfig, ErrMsgReadConfig).
			WithMetadata(MetaKeyPath, path)
	}

	cfg, err := Parse(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		var customErr *cuserr.CustomError
		if errors.As(err, &customErr) {
			return nil, customErr.WithMetadata(MetaKeyPath, path)
		}
		return nil, err
	}
	return cfg, nil
}

// Parse decodes data in the format named by ext (".yaml", ".yml", ".toml"
// or ".json"), fills defaults and validates the result.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := &Config{}

	var err error
	switch ext {
	case ExtYAML, ExtYML:
		err = yaml.Unmarshal(data, cfg)
	case ExtTOML:
		err = toml.Unmarshal(data, cfg)
	case ExtJSON:
		err = json.Unmarshal(data, cfg)
	default:
		return nil, cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnsupportedFormat).
			WithMetadata(MetaKeyFormat, ext)
	}
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeConfig, ErrMsgParseConfig).
			WithMetadata(MetaKeyFormat, ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Store.Driver == "" {
		c.Store.Driver = DefaultDriver
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks driver, value names, built-in names and log level.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverFilesystem, DriverPostgres:
		if c.Store.DSN == "" {
			return cuserr.NewValidationError(ErrCodeConfig, ErrMsgDSNRequired).
				WithMetadata(MetaKeyDriver, c.Store.Driver)
		}
	default:
		return cuserr.NewValidationError(ErrCodeConfig, ErrMsgUnknownDriver).
			WithMetadata(MetaKeyDriver, c.Store.Driver)
	}

	for name := range c.Values {
		if !validName(name) {
			return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidValueName).
				WithMetadata(MetaKeyName, name)
		}
	}

	if _, err := handlers.ByName(c.Builtins...); err != nil {
		return err
	}

	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return cuserr.NewValidationError(ErrCodeConfig, ErrMsgInvalidLogLevel).
			WithMetadata(MetaKeyLevel, c.LogLevel)
	}
	return nil
}

// Handlers builds the handler set described by c. Values override
// built-ins, and an enabled env section overrides a listed env built-in.
func (c *Config) Handlers() (funcy.Handlers, error) {
	hs, err := handlers.ByName(c.Builtins...)
	if err != nil {
		return nil, err
	}
	if c.Env.Enabled {
		hs[handlers.NameEnv] = handlers.Env(c.Env.Allow...)
	}
	for name, h := range handlers.Values(c.Values).Handlers() {
		hs[name] = h
	}
	return hs, nil
}

// validName reports whether name can appear as an invocation name: not
// empty, no space and no closing delimiter.
func validName(name string) bool {
	return name != "" &&
		!strings.Contains(name, funcy.ArgSeparator) &&
		!strings.Contains(name, funcy.PlaceholderClose)
}
