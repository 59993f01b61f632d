// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhitt/sky-engine/internal/constellation"
	"github.com/mwhitt/sky-engine/pkg/types"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print Sun, Moon, and planet positions for an observer and instant",
	Long: `Snapshot queries one authority for the positions of every supported
body at a single instant and prints altitude, azimuth, and constellation per
body. Bodies the authority cannot resolve are reported, not fatal.`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().String("observer", "jerusalem", "named observer location")
	snapshotCmd.Flags().String("time", "", "instant (Julian day or YYYY-MM-DD, default now)")
	snapshotCmd.Flags().String("authority", "", "position authority (default from config)")
	snapshotCmd.Flags().Bool("json", false, "output positions as JSON")

	rootCmd.AddCommand(snapshotCmd)
}

var snapshotBodies = []types.Body{
	types.Sun, types.Moon, types.Mercury, types.Venus,
	types.Mars, types.Jupiter, types.Saturn,
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	obsName, _ := cmd.Flags().GetString("observer")
	obs, err := types.LookupObserver(obsName)
	if err != nil {
		return err
	}

	instant := types.FromTime(time.Now())
	if timeStr, _ := cmd.Flags().GetString("time"); timeStr != "" {
		if instant, err = parseInstant(timeStr); err != nil {
			return err
		}
	}

	authority, _ := cmd.Flags().GetString("authority")
	if authority == "" {
		authority = cfg.Ephemeris.PrimaryAuthority
	}
	provider, err := providers(cfg).Get(authority)
	if err != nil {
		return err
	}
	boundaries, err := constellation.NewRegistry()
	if err != nil {
		return err
	}

	var positions []types.BodyPosition
	for _, body := range snapshotBodies {
		pos, err := provider.Position(ctx, body, obs, instant)
		if err != nil {
			if errors.Is(err, types.ErrEphemerisUnavailable) {
				fmt.Fprintf(os.Stderr, "%s: unavailable: %v\n", body, err)
				continue
			}
			return err
		}
		if id, auth, err := constellation.Of(boundaries, pos, ""); err == nil {
			pos.Constellation = id
			pos.BoundaryAuthority = auth
		}
		positions = append(positions, pos)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(positions)
	}

	fmt.Printf("%s from %s, authority %s\n\n", instant, obs.Name, authority)
	fmt.Printf("%-8s  %9s  %9s  %8s  %8s  %5s\n", "Body", "Alt", "Az", "RA", "Dec", "Const")
	for _, p := range positions {
		fmt.Printf("%-8s  %8.3f°  %8.3f°  %7.3f°  %7.3f°  %5s\n",
			p.Body, p.Altitude, p.Azimuth, p.RAJ2000, p.DecJ2000, p.Constellation)
	}
	return nil
}
