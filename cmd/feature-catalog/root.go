package main

import (
	"context"
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-features/internal/config"
	"github.com/KirkDiggler/dnd-features/internal/logging"
	"github.com/KirkDiggler/dnd-features/internal/services"
)

// providerFactory builds the services a command needs. The returned func
// releases whatever the provider holds open.
type providerFactory func(ctx context.Context, cfg *config.Config) (*services.Provider, func(), error)

type app struct {
	cfg         *config.Config
	newProvider providerFactory
}

func newRootCmd(factory providerFactory) *cobra.Command {
	a := &app{newProvider: factory}

	root := &cobra.Command{
		Use:   "feature-catalog",
		Short: "Inspect the warlock feature catalog and sync its spells",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg

			logging.Setup(cfg.Log.Level)
			initStyling()
			log.Debug().Str("command", cmd.Name()).Msg("command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newListCmd(a))
	root.AddCommand(newSyncSpellsCmd(a))

	return root
}

// withProvider runs fn with a provider and releases it afterwards
func (a *app) withProvider(ctx context.Context, fn func(*services.Provider) error) error {
	provider, cleanup, err := a.newProvider(ctx, a.cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(provider)
}
