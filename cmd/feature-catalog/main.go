package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(newProvider).ExecuteContext(ctx); err != nil {
		if dnderr.IsCanceled(err) {
			log.Info().Msg("interrupted")
		} else {
			log.Error().Err(err).Msg("feature-catalog failed")
		}
		stop()
		os.Exit(1)
	}
}
