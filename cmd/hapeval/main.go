// cmd/hapeval/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hapeval/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = app.ExitCanceled
	}

	stop()
	os.Exit(code)
}
