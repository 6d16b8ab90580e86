// Package funcy provides a small function-based template engine.
//
// Templates embed placeholders of the form <!$ name arg>. Each placeholder is
// replaced by the output of the handler registered under name:
//
//	r := funcy.NewWithTemplate("<!$ echo Hello>, World!")
//	r.SetHandlerFunc("echo", func(name, arg string) (string, error) {
//	    return arg, nil
//	})
//	out, err := r.Render()
//	// out: "Hello, World!"
//
// # Syntax
//
// A placeholder starts with the four bytes "<!$ " and ends at the next ">".
// The content in between is split at its first space: the part before it is
// the invocation name, the rest is the argument passed to the handler.
//
//	<!$ counter>              name "counter", empty argument
//	<!$ greet dear reader>    name "greet", argument "dear reader"
//
// Placeholders do not nest and there is no escape syntax. An opening
// sequence without a closing ">" is left in the output as plain text.
//
// # Handlers
//
// Handlers implement the Handler interface or are plain functions wrapped in
// HandlerFunc. A handler may keep state between calls:
//
//	type Counter struct{ n int }
//
//	func (c *Counter) Handle(name, arg string) (string, error) {
//	    c.n++
//	    return strconv.Itoa(c.n), nil
//	}
//
//	r := funcy.NewWithTemplate("<!$ counter> <!$ counter> <!$ counter>")
//	r.SetHandler("counter", &Counter{})
//	out, _ := r.Render()
//	// out: "1 2 3"
//
// Ready-made handlers live in the handlers package.
//
// # Errors
//
// Render stops at the first failing placeholder and returns either an
// *UnknownFunctionError (no handler for the name) or a *FunctionError (the
// handler returned an error). Both unwrap to a *cuserr.CustomError carrying
// the details as metadata.
package funcy
