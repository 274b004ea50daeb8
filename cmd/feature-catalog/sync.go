package main

import (
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
	"github.com/KirkDiggler/dnd-features/internal/services"
)

type syncOptions struct {
	class string
	keys  []string
}

func newSyncSpellsCmd(a *app) *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync-spells",
		Short: "Fetch spells from the D&D 5e API into the spell cache",
		Long: `Fetch spells from the D&D 5e API. Without --keys the class spell list
is synced along with every built-in spell. Component lists already known
locally are kept when the API reports none.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withProvider(cmd.Context(), func(p *services.Provider) error {
				return runSyncSpells(cmd, p, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.class, "class", "warlock", "class whose spell list is synced")
	cmd.Flags().StringSliceVar(&opts.keys, "keys", nil, "spell keys to sync instead of a class list")

	return cmd
}

func runSyncSpells(cmd *cobra.Command, p *services.Provider, opts *syncOptions) error {
	ctx := cmd.Context()

	keys := opts.keys
	if len(keys) == 0 {
		classKeys, err := p.CatalogService.ClassSpellKeys(ctx, opts.class)
		if err != nil {
			return err
		}
		keys = append(classKeys, p.Spells.Keys()...)
	}

	result, err := p.CatalogService.Sync(ctx, p.Spells, keys)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(result.Synced)+len(result.Failed))
	for _, key := range result.Synced {
		spell, err := p.Spells.Spell(key)
		if err != nil {
			return err
		}
		components := make([]string, 0, len(spell.Components))
		for _, c := range spell.Components {
			components = append(components, string(c))
		}
		rows = append(rows, []string{key, spell.Name, strconv.Itoa(spell.Level), strings.Join(components, ", "), "synced"})
	}

	failed := make([]string, 0, len(result.Failed))
	for key := range result.Failed {
		failed = append(failed, key)
	}
	sort.Strings(failed)
	for _, key := range failed {
		rows = append(rows, []string{key, "", "", "", result.Failed[key].Error()})
	}

	if err := renderTable(cmd.OutOrStdout(), []string{"KEY", "NAME", "LEVEL", "COMPONENTS", "STATUS"}, rows); err != nil {
		return err
	}

	if len(failed) > 0 {
		return dnderr.Newf(dnderr.CodeUnavailable, "%d of %d spells failed to sync", len(failed), len(failed)+len(result.Synced)).
			WithMeta("spells", failed)
	}
	return nil
}
