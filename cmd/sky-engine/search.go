// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwhitt/sky-engine/internal/reconcile"
	"github.com/mwhitt/sky-engine/internal/scan"
	"github.com/mwhitt/sky-engine/pkg/types"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Scan a date range for a criterion and verify the matches",
	Long: `Search runs a criterion file over a date range: a coarse scan brackets
every interval where the configuration holds, bisection refines each boundary,
and a peak search pins the best instant. Unless --no-verify is given, every
candidate is then reconciled against the secondary authority and printed with
its verification status.

Dates are Julian day numbers or YYYY-MM-DD (negative years for BC).`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().String("criterion", "", "criterion YAML file (required)")
	searchCmd.Flags().String("from", "", "range start (required)")
	searchCmd.Flags().String("to", "", "range end (required)")
	searchCmd.Flags().String("observer", "jerusalem", "named observer location")
	searchCmd.Flags().String("authority", "", "primary position authority (default from config)")
	searchCmd.Flags().Int("workers", 0, "partition the range across N parallel workers")
	searchCmd.Flags().Bool("no-verify", false, "skip reconciliation against the secondary authority")
	searchCmd.Flags().Bool("json", false, "output results as JSON")
	searchCmd.MarkFlagRequired("criterion")
	searchCmd.MarkFlagRequired("from")
	searchCmd.MarkFlagRequired("to")

	rootCmd.AddCommand(searchCmd)
}

// searchResult pairs a candidate with its verification outcome.
type searchResult struct {
	Candidate    types.Candidate           `json:"candidate"`
	Verification *types.VerificationResult `json:"verification,omitempty"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	critFile, _ := cmd.Flags().GetString("criterion")
	crit, err := types.LoadCriterion(critFile)
	if err != nil {
		return err
	}

	start, end, err := rangeFromFlags(cmd)
	if err != nil {
		return err
	}

	obsName, _ := cmd.Flags().GetString("observer")
	obs, err := types.LookupObserver(obsName)
	if err != nil {
		return err
	}

	authority, _ := cmd.Flags().GetString("authority")
	if authority == "" {
		authority = cfg.Ephemeris.PrimaryAuthority
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Scan.Workers = workers
	}

	eval, err := evaluatorFor(cfg, authority, obs)
	if err != nil {
		return err
	}

	engine := &scan.Engine{
		Eval:     eval,
		Config:   cfg.Scan,
		Observer: obs,
		Warnings: os.Stderr,
	}

	candidates, err := engine.ScanParallel(ctx, crit, start, end)
	if err != nil {
		return err
	}

	results := make([]searchResult, 0, len(candidates))
	noVerify, _ := cmd.Flags().GetBool("no-verify")
	if noVerify {
		for _, c := range candidates {
			results = append(results, searchResult{Candidate: c})
		}
	} else {
		secondary, err := evaluatorFor(cfg, cfg.Ephemeris.SecondaryAuthority, obs)
		if err != nil {
			return err
		}
		rec := &reconcile.Reconciler{Secondary: secondary, Config: cfg.Reconcile}
		for _, c := range candidates {
			v, err := rec.Reconcile(ctx, c)
			if err != nil {
				return err
			}
			results = append(results, searchResult{Candidate: c, Verification: &v})
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatSearchOutput(results, jsonOutput)
}

func rangeFromFlags(cmd *cobra.Command) (types.JulianDay, types.JulianDay, error) {
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	start, err := parseInstant(fromStr)
	if err != nil {
		return 0, 0, err
	}
	end, err := parseInstant(toStr)
	if err != nil {
		return 0, 0, err
	}
	if !start.Before(end) {
		return 0, 0, fmt.Errorf("range start %s is not before end %s", start, end)
	}
	return start, end, nil
}

func formatSearchOutput(results []searchResult, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No matches found.")
		return nil
	}

	for i, r := range results {
		c := r.Candidate
		fmt.Printf("%d. %s at %s (JD %.5f)\n", i+1, c.Criterion.Name, c.Instant, float64(c.Instant))
		fmt.Printf("   window %s to %s, margin %.5f, authority %s\n",
			c.Start, c.End, c.Margin, c.Authority)
		if r.Verification != nil {
			v := r.Verification
			fmt.Printf("   verification: %s (%s)\n", v.Status, v.Authority)
			for _, d := range v.Disagreements {
				fmt.Printf("     %s %s: %s vs %s\n", d.Body, d.Field, d.Primary, d.Secondary)
			}
			if v.Reason != "" {
				fmt.Printf("     %s\n", v.Reason)
			}
		}
	}
	return nil
}
