package funcy

// Handler resolves a placeholder to its replacement text.
//
// Handle is called once for every tag whose invocation name the handler is
// registered under, left to right within a render. name is the invocation
// name, so one handler may serve several names. arg is the remainder of the
// tag content after the first space, or "" when there is none.
//
// A handler may keep and mutate private state between calls. The renderer
// does no locking: a handler shared by renderers that render concurrently
// must synchronize itself. A returned error aborts the render and its text
// is reported unchanged in FunctionError.Message.
type Handler interface {
	Handle(name, arg string) (string, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(name, arg string) (string, error)

// Handle calls f(name, arg).
func (f HandlerFunc) Handle(name, arg string) (string, error) {
	return f(name, arg)
}

// Handlers maps invocation names to handlers. Names are case-sensitive.
type Handlers map[string]Handler
