// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitt/sky-engine/internal/catalog"
	"github.com/mwhitt/sky-engine/internal/scripture"
	"github.com/mwhitt/sky-engine/pkg/types"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List the built-in event presets",
	Long: `Events lists the built-in presets that can seed the catalog or drive
the planetarium view. With --seed, every preset is added to the catalog;
presets already present are skipped. With --refs, the scripture passages
behind each preset are printed in full.`,
	RunE: runEvents,
}

func init() {
	eventsCmd.Flags().Bool("seed", false, "add all presets to the catalog")
	eventsCmd.Flags().Bool("refs", false, "print full passage text for each preset")

	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	seed, _ := cmd.Flags().GetBool("seed")
	refs, _ := cmd.Flags().GetBool("refs")

	var store *catalog.Store
	if seed {
		var err error
		store, err = catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	var passages *scripture.Service
	if refs {
		passages = scripture.NewService(cfg.Scripture)
	}

	for _, p := range catalog.Presets() {
		fmt.Printf("%-32s  %-24s  %-10s  %s\n",
			p.Label, p.Instant, p.ObserverName, p.Description)
		if len(p.ScriptureRefs) > 0 {
			fmt.Printf("  refs: %s\n", strings.Join(p.ScriptureRefs, "; "))
		}

		if refs {
			for _, ref := range p.ScriptureRefs {
				passage, err := passages.Lookup(ctx, ref)
				if err != nil {
					fmt.Printf("    %s: %v\n", ref, err)
					continue
				}
				fmt.Printf("    %s: %s\n", passage.Reference, passage.Text)
			}
		}

		if seed {
			obs, err := types.LookupObserver(p.ObserverName)
			if err != nil {
				return err
			}
			stored, err := store.Add(ctx, p.Entry(obs))
			if err != nil {
				if errors.Is(err, types.ErrDuplicateKey) {
					fmt.Printf("  already cataloged\n")
					continue
				}
				return err
			}
			fmt.Printf("  seeded as %s\n", stored.Key)
		}
	}
	return nil
}
