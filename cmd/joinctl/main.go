// Command joinctl is the operator CLI for the member registry: schema
// migrations, account administration, offline export and session cleanup.
//
// Configuration is read the same way as the server (CONFIG_PATH plus
// environment overrides).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "joinctl:", err)
		stop()
		os.Exit(1)
	}
}
