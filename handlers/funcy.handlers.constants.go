package handlers

import "time"

// Built-in handler names
const (
	NameEcho     = "echo"
	NameCounter  = "counter"
	NameEnv      = "env"
	NameUpper    = "upper"
	NameLower    = "lower"
	NameNow      = "now"
	NameSanitize = "sanitize"
)

// Error message constants
const (
	ErrMsgUnknownBuiltin   = "unknown built-in handler"
	ErrMsgEnvNameMissing   = "environment variable name required"
	ErrMsgEnvVarNotSet     = "environment variable not set"
	ErrMsgEnvVarDisallowed = "environment variable not allowed"
	ErrMsgValueNotFound    = "no value for name"
)

// Error code constants
const (
	ErrCodeHandler = "FUNCY_HANDLER"
)

// Metadata keys
const (
	MetaKeyHandler = "handler"
	MetaKeyEnvVar  = "env_var"
	MetaKeyName    = "name"
)

// DefaultTimeLayout is used by the now handler when no layout is given.
const DefaultTimeLayout = time.RFC3339
