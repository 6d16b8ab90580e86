// Package handlers provides ready-made placeholder handlers for funcy
// renderers.
package handlers

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/itsatony/go-cuserr"
	"github.com/itsatony/go-funcy"
)

// Echo returns a handler that outputs its argument unchanged.
func Echo() funcy.Handler {
	return funcy.HandlerFunc(func(_, arg string) (string, error) {
		return arg, nil
	})
}

// Upper returns a handler that upper-cases its argument.
func Upper() funcy.Handler {
	return funcy.HandlerFunc(func(_, arg string) (string, error) {
		return strings.ToUpper(arg), nil
	})
}

// Lower returns a handler that lower-cases its argument.
func Lower() funcy.Handler {
	return funcy.HandlerFunc(func(_, arg string) (string, error) {
		return strings.ToLower(arg), nil
	})
}

// Counter increments on every call and outputs the new value.
// It is not safe for concurrent use.
type Counter struct {
	start int
	value int
}

// NewCounter creates a counter whose first output is start+1.
func NewCounter(start int) *Counter {
	return &Counter{start: start, value: start}
}

// Handle increments the counter. The argument is ignored.
func (c *Counter) Handle(_, _ string) (string, error) {
	c.value++
	return strconv.Itoa(c.value), nil
}

// Value returns the last value produced.
func (c *Counter) Value() int {
	return c.value
}

// Reset rewinds the counter to its start value.
func (c *Counter) Reset() {
	c.value = c.start
}

// Now returns a handler that formats the current time. The argument is a Go
// time layout; empty means RFC 3339. A nil clock uses time.Now.
func Now(clock func() time.Time) funcy.Handler {
	if clock == nil {
		clock = time.Now
	}
	return funcy.HandlerFunc(func(_, layout string) (string, error) {
		if layout == "" {
			layout = DefaultTimeLayout
		}
		return clock().Format(layout), nil
	})
}

// Values serves static text. It is registered under each of its keys and
// answers with the value of the invocation name, ignoring the argument.
type Values map[string]string

// Handle returns the value stored for name.
func (v Values) Handle(name, _ string) (string, error) {
	val, ok := v[name]
	if !ok {
		return "", cuserr.NewNotFoundError(MetaKeyName, ErrMsgValueNotFound).
			WithMetadata(MetaKeyName, name)
	}
	return val, nil
}

// Names returns the keys in sorted order.
func (v Values) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Handlers returns v registered under every one of its names.
func (v Values) Handlers() funcy.Handlers {
	hs := make(funcy.Handlers, len(v))
	for name := range v {
		hs[name] = v
	}
	return hs
}

// Builtins returns a fresh set of every built-in handler keyed by its
// default name. Env is unrestricted.
func Builtins() funcy.Handlers {
	return funcy.Handlers{
		NameEcho:     Echo(),
		NameCounter:  NewCounter(0),
		NameEnv:      Env(),
		NameUpper:    Upper(),
		NameLower:    Lower(),
		NameNow:      Now(nil),
		NameSanitize: Sanitize(),
	}
}

// BuiltinNames returns the default names of all built-in handlers, sorted.
func BuiltinNames() []string {
	all := Builtins()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns fresh built-in handlers for the given names.
func ByName(names ...string) (funcy.Handlers, error) {
	all := Builtins()
	hs := make(funcy.Handlers, len(names))
	for _, name := range names {
		h, ok := all[name]
		if !ok {
			return nil, cuserr.NewNotFoundError(MetaKeyHandler, ErrMsgUnknownBuiltin).
				WithMetadata(MetaKeyHandler, name)
		}
		hs[name] = h
	}
	return hs, nil
}
