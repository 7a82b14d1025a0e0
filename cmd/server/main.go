// Command server runs the character-sheet HTTP service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/arkhamworks/investigator/internal/app"
	"github.com/arkhamworks/investigator/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx)
	if err != nil {
		config.Exitf("startup failed: %v", err)
	}
	defer a.Close()

	if err := a.Run(ctx); err != nil {
		config.Exitf("server failed: %v", err)
	}
}
