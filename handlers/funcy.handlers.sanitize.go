package handlers

import (
	"strings"
	"sync"

	"github.com/itsatony/go-funcy"
	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizePolicyOnce sync.Once
	sanitizePolicy     *bluemonday.Policy
)

// Sanitize returns a handler that HTML-escapes its argument so it can be
// embedded in markup as text:
//
//	<!$ sanitize Tom & Jerry>    -> Tom &amp; Jerry
//
// A tag ends at its first '>', so an argument never holds a complete
// element. A '<' in the argument is escaped like any other text.
func Sanitize() funcy.Handler {
	return funcy.HandlerFunc(func(_, arg string) (string, error) {
		return escapeMarkup(arg), nil
	})
}

func escapeMarkup(raw string) string {
	if raw == "" {
		return ""
	}
	// Pre-escape '<' so a partial element like "<b" stays text.
	return strictSanitizer().Sanitize(strings.ReplaceAll(raw, "<", "&lt;"))
}

func strictSanitizer() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		sanitizePolicy = bluemonday.StrictPolicy()
	})
	return sanitizePolicy
}
