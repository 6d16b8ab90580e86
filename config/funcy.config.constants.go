package config

// Supported file extensions
const (
	ExtYAML = ".yaml"
	ExtYML  = ".yml"
	ExtTOML = ".toml"
	ExtJSON = ".json"
)

// Store driver names accepted in config files
const (
	DriverMemory     = "memory"
	DriverFilesystem = "filesystem"
	DriverPostgres   = "postgres"
)

// Defaults
const (
	DefaultDriver   = DriverMemory
	DefaultLogLevel = "info"
)

// Error message constants
const (
	ErrMsgReadConfig        = "failed to read config file"
	ErrMsgParseConfig       = "failed to parse config file"
	ErrMsgUnsupportedFormat = "unsupported config file format"
	ErrMsgUnknownDriver     = "unknown store driver"
	ErrMsgDSNRequired       = "store dsn required for driver"
	ErrMsgInvalidValueName  = "invalid value name"
	ErrMsgInvalidLogLevel   = "invalid log level"
	ErrMsgSchemaFailed      = "failed to generate config schema"
)

// Error code constants
const (
	ErrCodeConfig = "FUNCY_CONFIG"
)

// Metadata keys
const (
	MetaKeyPath   = "path"
	MetaKeyFormat = "format"
	MetaKeyDriver = "driver"
	MetaKeyName   = "name"
	MetaKeyLevel  = "level"
)
