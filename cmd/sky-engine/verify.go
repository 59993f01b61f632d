// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/mwhitt/sky-engine/internal/catalog"
	"github.com/mwhitt/sky-engine/internal/reconcile"
	"github.com/mwhitt/sky-engine/pkg/types"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Reconcile a candidate or catalog entry against the secondary authority",
	Long: `Verify re-runs reconciliation. The subject is either a candidate YAML
file (--candidate, as produced by search --json) or an existing catalog entry
(--key). Reconciliation is idempotent: the same candidate against the same
authority yields the same verdict.

With --update and --key, a verified or rejected outcome is written back to
the catalog as a superseding entry.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().String("candidate", "", "candidate YAML file")
	verifyCmd.Flags().String("key", "", "catalog entry key (label@instant)")
	verifyCmd.Flags().String("authority", "", "secondary authority (default from config)")
	verifyCmd.Flags().Bool("update", false, "record the outcome as a superseding catalog entry")
	verifyCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	candFile, _ := cmd.Flags().GetString("candidate")
	key, _ := cmd.Flags().GetString("key")
	if (candFile == "") == (key == "") {
		return fmt.Errorf("exactly one of --candidate or --key is required")
	}

	var (
		cand  types.Candidate
		entry types.CatalogEntry
		store *catalog.Store
	)
	if candFile != "" {
		data, err := os.ReadFile(candFile)
		if err != nil {
			return fmt.Errorf("reading candidate file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cand); err != nil {
			return fmt.Errorf("parsing candidate file %s: %w", candFile, err)
		}
	} else {
		var err error
		store, err = catalog.NewStore(cfg.Catalog)
		if err != nil {
			return err
		}
		defer store.Close()

		entry, err = store.Get(ctx, key)
		if err != nil {
			return err
		}
		cand = candidateFromEntry(entry, cfg.Ephemeris.PrimaryAuthority)
	}

	if err := cand.Criterion.Validate(); err != nil {
		return err
	}

	authority, _ := cmd.Flags().GetString("authority")
	if authority == "" {
		authority = cfg.Ephemeris.SecondaryAuthority
	}
	secondary, err := evaluatorFor(cfg, authority, cand.Observer)
	if err != nil {
		return err
	}

	rec := &reconcile.Reconciler{Secondary: secondary, Config: cfg.Reconcile}
	result, err := rec.Reconcile(ctx, cand)
	if err != nil {
		return err
	}

	update, _ := cmd.Flags().GetBool("update")
	if update {
		if store == nil {
			return fmt.Errorf("--update requires --key")
		}
		entry.Verification = result
		stored, err := store.Supersede(ctx, entry)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "recorded %s (id %s, supersedes %s)\n",
			stored.Key, stored.ID, stored.Supersedes)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%s (%s)\n", result.Status, result.Authority)
	if result.Status == types.StatusVerified {
		fmt.Printf("instant %s (JD %.5f)\n", result.Instant, float64(result.Instant))
	}
	for _, d := range result.Disagreements {
		fmt.Printf("%s %s: %s vs %s\n", d.Body, d.Field, d.Primary, d.Secondary)
	}
	if result.Reason != "" {
		fmt.Println(result.Reason)
	}
	return nil
}

// candidateFromEntry reconstitutes a candidate from a stored entry so
// its verification can be recomputed.
func candidateFromEntry(entry types.CatalogEntry, authority string) types.Candidate {
	return types.Candidate{
		Criterion: entry.Criterion,
		Instant:   entry.Instant,
		Start:     entry.Instant,
		End:       entry.Instant,
		Positions: entry.Positions,
		Authority: authority,
		Observer:  entry.Observer,
	}
}
