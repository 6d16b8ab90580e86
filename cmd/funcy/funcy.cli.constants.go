package main

// Command names
const (
	CmdNameRender  = "render"
	CmdNameScan    = "scan"
	CmdNameWatch   = "watch"
	CmdNameStore   = "store"
	CmdNamePut     = "put"
	CmdNameGet     = "get"
	CmdNameList    = "list"
	CmdNameDelete  = "delete"
	CmdNameSchema  = "schema"
	CmdNameVersion = "version"
)

// Flag names - long form
const (
	FlagConfig   = "config"
	FlagVerbose  = "verbose"
	FlagTemplate = "template"
	FlagName     = "name"
	FlagOutput   = "output"
	FlagAsk      = "ask"
	FlagFormat   = "format"
)

// Flag names - short form
const (
	FlagConfigShort   = "c"
	FlagVerboseShort  = "v"
	FlagTemplateShort = "t"
	FlagNameShort     = "n"
	FlagOutputShort   = "o"
	FlagFormatShort   = "F"
)

// Flag default values
const (
	FlagDefaultOutput = "-" // stdout
	FlagDefaultFormat = OutputFormatText
)

// Output formats
const (
	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Exit codes
const (
	ExitCodeSuccess    = 0
	ExitCodeError      = 1
	ExitCodeUsageError = 2
	ExitCodeInputError = 4
)

// Store used when no --config is given, under os.UserConfigDir()
const (
	UserStoreDir          = "funcy"
	UserStoreTemplatesDir = "templates"
)

// HintMemoryStore is printed when a command opens the memory store.
const HintMemoryStore = "hint: the memory store keeps templates only for this run; set store.driver in the --config file to keep them"

// Input source indicators
const (
	InputSourceStdin = "-"
)

// Name of the interactive handler registered by render --ask
const (
	HandlerNameAsk = "ask"
)

// Error messages - ALL must be constants
const (
	ErrMsgLoadConfigFailed    = "failed to load config"
	ErrMsgTemplateSource      = "exactly one of --template or --name is required"
	ErrMsgMissingTemplate     = "template source required"
	ErrMsgReadFileFailed      = "failed to read file"
	ErrMsgWriteOutputFailed   = "failed to write output"
	ErrMsgRenderFailed        = "template render failed"
	ErrMsgInvalidFormat       = "invalid output format"
	ErrMsgOpenStoreFailed     = "failed to open template store"
	ErrMsgStoreFailed         = "template store operation failed"
	ErrMsgHandlersFailed      = "failed to build handlers"
	ErrMsgSchemaFailed        = "failed to generate schema"
	ErrMsgJSONMarshalFailed   = "failed to marshal JSON"
	ErrMsgWatchFailed         = "failed to watch template"
	ErrMsgAskFailed           = "failed to read answer"
	ErrMsgBuildLoggerFailed   = "failed to build logger"
	ErrMsgWatchStdinForbidden = "watch needs a template file, not stdin"
)

// Log messages
const (
	LogMsgConfigLoaded   = "config loaded"
	LogMsgStoreOpened    = "template store opened"
	LogMsgWatchStarted   = "watching template"
	LogMsgWatchRendered  = "template re-rendered"
	LogMsgWatchFailed    = "re-render failed"
	LogMsgWatchError     = "watcher error"
	LogMsgWatchStopped   = "watch stopped"
	LogMsgRenderComplete = "render complete"
)

// Log field names
const (
	LogFieldPath   = "path"
	LogFieldDriver = "driver"
	LogFieldName   = "name"
	LogFieldBytes  = "bytes"
	LogFieldEvent  = "event"
)

// Help text
const (
	CLIName            = "funcy"
	CLIDescription     = "Render <!$ name arg> placeholder templates"
	CLILongDescription = `funcy renders text templates whose placeholders look like <!$ name arg>.
Each placeholder calls the handler registered under name with arg and is
replaced by the handler's output.

Handlers come from the config file (--config): built-ins such as echo,
counter, env, upper, lower, now and sanitize, plus static values.
Without --config, stored templates live in funcy/templates under the user
config directory.`

	RenderShort   = "Render a template with the configured handlers"
	RenderExample = `  funcy render -t greeting.txt
  cat greeting.txt | funcy render -t -
  funcy render -n greeting -c funcy.yaml -o out.txt
  funcy render -t form.txt --ask`

	ScanShort   = "List the placeholders found in a template"
	ScanExample = `  funcy scan -t greeting.txt
  funcy scan -t greeting.txt -F json`

	WatchShort   = "Re-render a template file whenever it changes"
	WatchExample = `  funcy watch -t greeting.txt -o greeting.out`

	StoreShort       = "Manage named templates in the configured store"
	StorePutShort    = "Save a template under a name"
	StoreGetShort    = "Print a stored template"
	StoreListShort   = "List stored template names"
	StoreDeleteShort = "Delete a stored template"

	SchemaShort  = "Print the JSON Schema of the config file"
	VersionShort = "Show version information"

	FlagUsageConfig   = "config file (.yaml, .yml, .toml or .json)"
	FlagUsageVerbose  = "debug logging to stderr"
	FlagUsageTemplate = `template file ("-" for stdin)`
	FlagUsageName     = "name of a stored template"
	FlagUsageOutput   = `output file ("-" for stdout)`
	FlagUsageAsk      = `register an interactive "ask" handler`
	FlagUsageFormat   = "output format: text, json"
)

// Version output
const (
	VersionTextTemplate = "go-funcy version %s\nGo: %s\n"
)

// File permission constant
const (
	FilePermissions = 0644
)

// Format string constants
const (
	FmtErrorWithCause = "%s: %w"
	FmtError          = "Error: %v\n"
	FmtScanTag        = "%d\t%d\t%s\t%s\n"
	FmtLine           = "%s\n"
)
