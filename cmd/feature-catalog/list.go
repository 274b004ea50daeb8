package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-features/internal/domain/character"
	"github.com/KirkDiggler/dnd-features/internal/domain/rulebook/dnd5e/features"
	"github.com/KirkDiggler/dnd-features/internal/domain/shared"
	dnderr "github.com/KirkDiggler/dnd-features/internal/errors"
	"github.com/KirkDiggler/dnd-features/internal/services"
)

const statusNeedsImplementation = "needs implementation"

type listOptions struct {
	source        string
	unimplemented bool
	strict        bool
	level         int
	charisma      int
}

func newListCmd(a *app) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered features with their source and at-will spells",
		Long: `List every registered feature. Names that depend on the character
(Dark One's Blessing) are computed for a sample warlock built from
--level and --charisma.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withProvider(cmd.Context(), func(p *services.Provider) error {
				return runList(cmd, p, opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.source, "source", "", "only features whose source contains this text")
	cmd.Flags().BoolVar(&opts.unimplemented, "unimplemented", false, "only features that need implementation")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail when a listed feature needs implementation")
	cmd.Flags().IntVar(&opts.level, "level", 1, "warlock level of the sample character")
	cmd.Flags().IntVar(&opts.charisma, "charisma", 10, "charisma score of the sample character")

	return cmd
}

func runList(cmd *cobra.Command, p *services.Provider, opts *listOptions) error {
	sample := character.NewCharacter("sample")
	if err := sample.SetClassLevel(features.ClassWarlock, opts.level); err != nil {
		return err
	}
	sample.SetAbilityScore(shared.AttributeCharisma, opts.charisma)

	var (
		rows     [][]string
		flagged  []string
		wantText = strings.ToLower(opts.source)
	)
	for _, key := range p.Features.Keys() {
		f, err := p.Features.New(key, "")
		if err != nil {
			return err
		}
		if wantText != "" && !strings.Contains(strings.ToLower(f.Source()), wantText) {
			continue
		}
		if opts.unimplemented && !f.NeedsImplementation() {
			continue
		}

		if err := f.Bind(sample); err != nil {
			return err
		}
		name, err := f.Name()
		if err != nil {
			return err
		}

		status := ""
		if f.NeedsImplementation() {
			status = statusNeedsImplementation
			flagged = append(flagged, key)
		}

		rows = append(rows, []string{
			key,
			name,
			f.Source(),
			strings.Join(f.AtWillSpells(), ", "),
			status,
		})
	}

	if err := renderTable(cmd.OutOrStdout(), []string{"KEY", "NAME", "SOURCE", "AT WILL", "STATUS"}, rows); err != nil {
		return err
	}

	if opts.strict && len(flagged) > 0 {
		return dnderr.Unimplementedf("%d features need implementation: %s", len(flagged), strings.Join(flagged, ", ")).
			WithMeta("features", flagged)
	}
	return nil
}
