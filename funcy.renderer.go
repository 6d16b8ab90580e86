package funcy

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/itsatony/go-funcy/internal"
	"go.uber.org/zap"
)

// Tag is a placeholder occurrence: byte span [Start, End) of the whole tag
// in the template and the raw Content between "<!$ " and ">".
type Tag = internal.Tag

// Scan returns the placeholder tags in text, ordered left to right.
func Scan(text string) []Tag {
	return internal.Scan(text)
}

// SplitContent splits tag content at its first space into the invocation
// name and argument. Content without a space is all name.
func SplitContent(content string) (name, arg string) {
	name, arg, _ = strings.Cut(content, ArgSeparator)
	return name, arg
}

// Renderer renders a template by replacing each placeholder with the output
// of the handler registered under its invocation name.
//
// The tag list is recomputed whenever the template changes. The handler
// registry survives template changes. A Renderer is not safe for concurrent
// use.
type Renderer struct {
	template string
	tags     []Tag
	handlers Handlers
	scanner  *internal.Scanner
	logger   *zap.Logger
}

// New creates a Renderer with an empty template.
func New(opts ...Option) *Renderer {
	config := defaultRendererConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Renderer{
		handlers: make(Handlers, len(config.handlers)),
		scanner:  internal.NewScanner(logger),
		logger:   logger,
	}
	for name, h := range config.handlers {
		if h != nil {
			r.handlers[name] = h
		}
	}

	logger.Debug(LogMsgRendererCreated, zap.Int(LogFieldHandlerCount, len(r.handlers)))
	return r
}

// NewWithTemplate creates a Renderer and scans template immediately.
func NewWithTemplate(template string, opts ...Option) *Renderer {
	r := New(opts...)
	r.SetTemplate(template)
	return r
}

// SetTemplate replaces the template text and rescans it.
func (r *Renderer) SetTemplate(template string) {
	r.template = template
	r.tags = r.scanner.Scan(template)
	r.logger.Debug(LogMsgTemplateSet,
		zap.Int(LogFieldTemplateLength, len(template)),
		zap.Int(LogFieldTagCount, len(r.tags)),
	)
}

// Template returns the current template text.
func (r *Renderer) Template() string {
	return r.template
}

// Tags returns a copy of the tags found in the current template.
func (r *Renderer) Tags() []Tag {
	tags := make([]Tag, len(r.tags))
	copy(tags, r.tags)
	return tags
}

// SetHandler adds or replaces the handler for name. A nil handler is ignored.
func (r *Renderer) SetHandler(name string, h Handler) {
	if h == nil {
		r.logger.Warn(LogMsgHandlerNil, zap.String(LogFieldHandler, name))
		return
	}
	if _, exists := r.handlers[name]; exists {
		r.logger.Debug(LogMsgHandlerReplaced, zap.String(LogFieldHandler, name))
	} else {
		r.logger.Debug(LogMsgHandlerRegistered, zap.String(LogFieldHandler, name))
	}
	r.handlers[name] = h
}

// SetHandlerFunc adds or replaces name with an ordinary function.
func (r *Renderer) SetHandlerFunc(name string, fn func(name, arg string) (string, error)) {
	if fn == nil {
		r.SetHandler(name, nil)
		return
	}
	r.SetHandler(name, HandlerFunc(fn))
}

// AppendHandlers merges hs into the registry. Entries in hs win on
// name collisions.
func (r *Renderer) AppendHandlers(hs Handlers) {
	for name, h := range hs {
		if h == nil {
			r.logger.Warn(LogMsgHandlerNil, zap.String(LogFieldHandler, name))
			continue
		}
		r.handlers[name] = h
	}
	r.logger.Debug(LogMsgHandlersAppended, zap.Int(LogFieldHandlerCount, len(r.handlers)))
}

// SetHandlers discards every registered handler and installs hs.
func (r *Renderer) SetHandlers(hs Handlers) {
	r.handlers = make(Handlers, len(hs))
	r.AppendHandlers(hs)
	r.logger.Debug(LogMsgHandlersReplaced, zap.Int(LogFieldHandlerCount, len(r.handlers)))
}

// RemoveHandler unregisters name.
// Returns true if a handler was registered under name.
func (r *Renderer) RemoveHandler(name string) bool {
	if _, exists := r.handlers[name]; !exists {
		return false
	}
	delete(r.handlers, name)
	r.logger.Debug(LogMsgHandlerRemoved, zap.String(LogFieldHandler, name))
	return true
}

// HasHandler checks if a handler is registered under name.
func (r *Renderer) HasHandler(name string) bool {
	_, exists := r.handlers[name]
	return exists
}

// HandlerNames returns all registered names in sorted order.
func (r *Renderer) HandlerNames() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HandlerCount returns the number of registered handlers.
func (r *Renderer) HandlerCount() int {
	return len(r.handlers)
}

// Render substitutes every placeholder and returns the result.
//
// Tags are resolved left to right. The first unknown name yields an
// *UnknownFunctionError and the first handler failure a *FunctionError;
// either way no partial output is returned.
func (r *Renderer) Render() (string, error) {
	start := time.Now()
	r.logger.Debug(LogMsgRenderStart,
		zap.Int(LogFieldTemplateLength, len(r.template)),
		zap.Int(LogFieldTagCount, len(r.tags)),
	)

	var sb strings.Builder
	sb.Grow(len(r.template))
	lastEnd := 0

	for _, tag := range r.tags {
		sb.WriteString(r.template[lastEnd:tag.Start])

		name, arg := SplitContent(tag.Content)
		h, ok := r.handlers[name]
		if !ok {
			err := NewUnknownFunctionError(tag)
			r.logger.Debug(LogMsgRenderFailed, zap.Error(err))
			return "", err
		}

		out, err := h.Handle(name, arg)
		if err != nil {
			ferr := NewFunctionError(name, err)
			r.logger.Debug(LogMsgRenderFailed, zap.String(LogFieldHandler, name), zap.Error(ferr))
			return "", ferr
		}
		sb.WriteString(out)

		lastEnd = tag.End
	}

	sb.WriteString(r.template[lastEnd:])

	r.logger.Debug(LogMsgRenderComplete,
		zap.Int(LogFieldOutputLength, sb.Len()),
		zap.Duration(LogFieldDuration, time.Since(start)),
	)
	return sb.String(), nil
}

// String returns a debug representation listing the template, its tags and
// the registered handler names.
func (r *Renderer) String() string {
	return fmt.Sprintf("Renderer{template: %q, tags: %v, handlers: %v}", r.template, r.tags, r.HandlerNames())
}

// Render is a convenience that renders template once with hs.
func Render(template string, hs Handlers, opts ...Option) (string, error) {
	opts = append(opts[:len(opts):len(opts)], WithHandlers(hs))
	return NewWithTemplate(template, opts...).Render()
}
