package internal

// Placeholder grammar. A tag is "<!$ " followed by content and closed by ">".
const (
	// PlaceholderParts is the delimiter pattern matched one byte at a time.
	// The first four bytes open a tag, the last one closes it.
	PlaceholderParts = "<!$ >"

	// PlaceholderOpenLen is the number of opening delimiter bytes.
	PlaceholderOpenLen = 4

	// placeholderDone is the cursor value after the closing byte matched.
	placeholderDone = len(PlaceholderParts)
)

// Scanner log messages
const (
	LogMsgScanStart    = "starting placeholder scan"
	LogMsgScanComplete = "placeholder scan complete"
)

// Scanner log fields
const (
	LogFieldSourceLength = "source_length"
	LogFieldTagCount     = "tag_count"
)
