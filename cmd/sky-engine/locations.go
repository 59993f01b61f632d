// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwhitt/sky-engine/pkg/types"
)

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "List the named observer locations",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-18s  %9s  %9s  %6s\n", "Name", "Lat", "Lon", "Elev")
		for _, name := range types.ObserverNames() {
			obs, _ := types.LookupObserver(name)
			fmt.Printf("%-18s  %8.4f°  %8.4f°  %5.0fm\n",
				name, obs.Latitude, obs.Longitude, obs.Elevation)
		}
	},
}

func init() {
	rootCmd.AddCommand(locationsCmd)
}
