package funcy

// Version is the library version reported by the CLI.
const Version = "0.3.0"

// Placeholder grammar (mirrors internal constants)
const (
	// PlaceholderOpen is the literal opening sequence of a tag.
	PlaceholderOpen = "<!$ "
	// PlaceholderClose terminates a tag.
	PlaceholderClose = ">"
	// ArgSeparator splits tag content into invocation name and argument.
	ArgSeparator = " "
)

// Error message constants - ALL error messages must be constants (NO MAGIC STRINGS)
const (
	ErrMsgUnknownFunction = "unknown function"
	ErrMsgFunctionFailed  = "placeholder function failed"
)

// Error display formats
const (
	ErrFmtUnknownFunction = "unknown function at char %d in placeholder content: '%s'"
	ErrFmtFunctionError   = "error in placeholder function %s: '%s'"
)

// Error code constants for categorization
const (
	ErrCodeUnknownFunction = "FUNCY_UNKNOWN_FUNCTION"
	ErrCodeFunction        = "FUNCY_FUNCTION"
)

// Metadata keys for cuserr.WithMetadata
const (
	MetaKeyFunction = "function"
	MetaKeyContent  = "content"
	MetaKeyStart    = "start"
	MetaKeyEnd      = "end"
	MetaKeyMessage  = "message"
)

// Log message constants
const (
	LogMsgRendererCreated   = "renderer created"
	LogMsgTemplateSet       = "template set"
	LogMsgHandlerRegistered = "handler registered"
	LogMsgHandlerReplaced   = "handler replaced"
	LogMsgHandlerRemoved    = "handler removed"
	LogMsgHandlerNil        = "ignoring nil handler"
	LogMsgHandlersAppended  = "handlers appended"
	LogMsgHandlersReplaced  = "handlers replaced"
	LogMsgRenderStart       = "starting render"
	LogMsgRenderComplete    = "render complete"
	LogMsgRenderFailed      = "render failed"
)

// Log field names
const (
	LogFieldTemplateLength = "template_length"
	LogFieldTagCount       = "tag_count"
	LogFieldHandler        = "handler"
	LogFieldHandlerCount   = "handler_count"
	LogFieldOutputLength   = "output_length"
	LogFieldDuration       = "duration"
)
