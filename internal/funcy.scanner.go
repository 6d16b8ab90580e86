package internal

import (
	"fmt"

	"go.uber.org/zap"
)

// Tag is a single placeholder occurrence in a template.
// Start and End are byte offsets of the whole tag including delimiters,
// Content is the text between the opener and the closing '>'.
type Tag struct {
	Start   int
	End     int
	Content string
}

// String returns a human-readable representation of the tag
func (t Tag) String() string {
	return fmt.Sprintf("Tag{[%d,%d) %q}", t.Start, t.End, t.Content)
}

// Scanner finds placeholder tags in template text.
// It is stateless between calls and may be reused.
type Scanner struct {
	logger *zap.Logger
}

// NewScanner creates a scanner. A nil logger disables logging.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{logger: logger}
}

// Scan returns every complete tag in source, ordered left to right.
func (s *Scanner) Scan(source string) []Tag {
	s.logger.Debug(LogMsgScanStart, zap.Int(LogFieldSourceLength, len(source)))
	tags := Scan(source)
	s.logger.Debug(LogMsgScanComplete, zap.Int(LogFieldTagCount, len(tags)))
	return tags
}

// Scan walks source once and collects complete tags.
//
// part counts how many delimiter bytes matched in a row. Below
// PlaceholderOpenLen a mismatch resets the match, and the mismatching byte is
// not tested again as a possible opener. Once the opener matched, every byte
// other than '>' is content. Tags never nest and an opener without a closing
// '>' before the end of source is dropped.
func Scan(source string) []Tag {
	var tags []Tag
	part := 0
	start := 0
	inTag := false

	for i := 0; i < len(source); i++ {
		if source[i] == PlaceholderParts[part] {
			if !inTag {
				inTag = true
				start = i
			}
			part++
		} else if part != PlaceholderOpenLen {
			part = 0
			inTag = false
		}

		if part == placeholderDone {
			tags = append(tags, Tag{
				Start:   start,
				End:     i + 1,
				Content: source[start+PlaceholderOpenLen : i],
			})
			part = 0
			inTag = false
		}
	}

	return tags
}
