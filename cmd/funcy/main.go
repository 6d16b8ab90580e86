package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	exitCode := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run is the main entry point for the CLI, separated for testing
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := newApp(stdin, stdout, stderr)
	defer app.close()

	root := app.rootCmd()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, FmtError, err)
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		// Anything cobra rejects before RunE is a usage problem.
		return ExitCodeUsageError
	}
	return ExitCodeSuccess
}
