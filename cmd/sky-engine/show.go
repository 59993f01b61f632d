// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitt/sky-engine/internal/catalog"
	"github.com/mwhitt/sky-engine/internal/stellarium"
	"github.com/mwhitt/sky-engine/pkg/types"
)

var showCmd = &cobra.Command{
	Use:   "show [event]",
	Short: "Drive a running Stellarium instance to an event's configuration",
	Long: `Show reproduces an event on a running Stellarium instance: it sets the
observer location, jumps the simulation clock to the event instant, pauses
time, and centers the view on the event's focus object.

The event is a built-in preset name or, with --key, a catalog entry key.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("key", "", "catalog entry key instead of a preset name")
	showCmd.Flags().Float64("fov", 0, "field of view in degrees (0 leaves it unchanged)")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	var (
		obs     types.Observer
		instant types.JulianDay
		focus   string
		label   string
	)

	key, _ := cmd.Flags().GetString("key")
	switch {
	case key != "" && len(args) > 0:
		return fmt.Errorf("give a preset name or --key, not both")

	case key != "":
		store, err := catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		entry, err := store.Get(ctx, key)
		if err != nil {
			return err
		}
		obs, instant, focus, label = entry.Observer, entry.Instant, entry.FocusObject, entry.Label

	case len(args) == 1:
		preset, ok := catalog.LookupPreset(args[0])
		if !ok {
			return fmt.Errorf("unknown event %q (known: %s)",
				args[0], strings.Join(presetLabels(), ", "))
		}
		var err error
		obs, err = types.LookupObserver(preset.ObserverName)
		if err != nil {
			return err
		}
		instant, focus, label = preset.Instant, preset.FocusObject, preset.Label

	default:
		return fmt.Errorf("event required: give a preset name or --key")
	}

	client := stellarium.NewClient(cfg.Stellarium)
	if err := client.SetLocation(ctx, obs); err != nil {
		return err
	}
	if err := client.SetTime(ctx, instant); err != nil {
		return err
	}
	if focus != "" {
		if err := client.Focus(ctx, focus, "center"); err != nil {
			return err
		}
	}
	if fov, _ := cmd.Flags().GetFloat64("fov"); fov > 0 {
		if err := client.SetFOV(ctx, fov); err != nil {
			return err
		}
	}

	fmt.Printf("showing %s: %s from %s", label, instant, obs.Name)
	if focus != "" {
		fmt.Printf(", centered on %s", focus)
	}
	fmt.Println()
	return nil
}
