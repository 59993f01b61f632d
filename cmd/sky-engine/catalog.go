// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/mwhitt/sky-engine/internal/catalog"
	"github.com/mwhitt/sky-engine/pkg/types"
)

// Query bounds wide enough for any date the engine handles.
const (
	allTimeStart types.JulianDay = -2e6
	allTimeEnd   types.JulianDay = 6e6
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the event catalog (add, get, list)",
	Long: `Catalog manages the append-only event database. Entries are never
rewritten: corrections supersede, and the full history of every key stays
queryable.`,
}

// --- add subcommand ---

var catalogAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an entry from a YAML file or a named preset",
	Long: `Add appends a catalog entry. The entry comes from --entry (a YAML
file describing label, instant, observer, criterion and references) or from
--event (a built-in preset). Adding a key that already exists fails unless
--supersede is given, which records a corrected entry pointing back at the
one it replaces.`,
	RunE: runCatalogAdd,
}

func runCatalogAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	entry, err := entryFromFlags(cmd)
	if err != nil {
		return err
	}
	if err := entry.Criterion.Validate(); err != nil {
		return err
	}

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	supersede, _ := cmd.Flags().GetBool("supersede")
	var stored types.CatalogEntry
	if supersede {
		stored, err = store.Supersede(ctx, entry)
	} else {
		stored, err = store.Add(ctx, entry)
	}
	if err != nil {
		return err
	}

	fmt.Printf("added %s (id %s)\n", stored.Key, stored.ID)
	if stored.Supersedes != "" {
		fmt.Printf("supersedes %s\n", stored.Supersedes)
	}
	return nil
}

func entryFromFlags(cmd *cobra.Command) (types.CatalogEntry, error) {
	entryFile, _ := cmd.Flags().GetString("entry")
	eventName, _ := cmd.Flags().GetString("event")

	switch {
	case entryFile != "" && eventName != "":
		return types.CatalogEntry{}, fmt.Errorf("--entry and --event are mutually exclusive")

	case entryFile != "":
		data, err := os.ReadFile(entryFile)
		if err != nil {
			return types.CatalogEntry{}, fmt.Errorf("reading entry file: %w", err)
		}
		var entry types.CatalogEntry
		if err := yaml.Unmarshal(data, &entry); err != nil {
			return types.CatalogEntry{}, fmt.Errorf("parsing entry file %s: %w", entryFile, err)
		}
		return entry, nil

	case eventName != "":
		preset, ok := catalog.LookupPreset(eventName)
		if !ok {
			return types.CatalogEntry{}, fmt.Errorf("unknown event %q (known: %s)",
				eventName, strings.Join(presetLabels(), ", "))
		}
		obs, err := types.LookupObserver(preset.ObserverName)
		if err != nil {
			return types.CatalogEntry{}, err
		}
		return preset.Entry(obs), nil
	}
	return types.CatalogEntry{}, fmt.Errorf("entry source required: provide --entry or --event")
}

// --- get subcommand ---

var catalogGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Fetch the latest entry for a key",
	Long: `Get prints the latest entry recorded under a key (label@instant).
With --history, the whole supersede chain is printed, newest first.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogGet,
}

func runCatalogGet(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	history, _ := cmd.Flags().GetBool("history")
	if history {
		entries, err := store.History(ctx, args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return fmt.Errorf("no entries for key %q", args[0])
		}
		return printEntries(entries, true)
	}

	entry, err := store.Get(ctx, args[0])
	if err != nil {
		return err
	}
	return printEntries([]types.CatalogEntry{entry}, true)
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List entries by date range and/or verification status",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := engineConfig()

	store, err := catalog.NewStore(cfg.Catalog)
	if err != nil {
		return err
	}
	defer store.Close()

	status, _ := cmd.Flags().GetString("status")
	fromStr, _ := cmd.Flags().GetString("from")
	toStr, _ := cmd.Flags().GetString("to")

	var entries []types.CatalogEntry
	switch {
	case fromStr != "" || toStr != "":
		start, end := allTimeStart, allTimeEnd
		if fromStr != "" {
			if start, err = parseInstant(fromStr); err != nil {
				return err
			}
		}
		if toStr != "" {
			if end, err = parseInstant(toStr); err != nil {
				return err
			}
		}
		entries, err = store.ListByDateRange(ctx, start, end)
		if err != nil {
			return err
		}
		if status != "" {
			entries = filterByStatus(entries, types.VerificationStatus(status))
		}

	case status != "":
		entries, err = store.ListByStatus(ctx, types.VerificationStatus(status))
		if err != nil {
			return err
		}

	default:
		entries, err = store.ListByDateRange(ctx, allTimeStart, allTimeEnd)
		if err != nil {
			return err
		}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	return printEntries(entries, false)
}

func filterByStatus(entries []types.CatalogEntry, status types.VerificationStatus) []types.CatalogEntry {
	var out []types.CatalogEntry
	for _, e := range entries {
		if e.Verification.Status == status {
			out = append(out, e)
		}
	}
	return out
}

func printEntries(entries []types.CatalogEntry, verbose bool) error {
	if len(entries) == 0 {
		fmt.Println("No entries found.")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%-40s  %-24s  %-12s  %s\n", e.Key, e.Instant, e.Verification.Status, e.Description)
		if !verbose {
			continue
		}
		fmt.Printf("  id %s", e.ID)
		if e.Supersedes != "" {
			fmt.Printf("  supersedes %s", e.Supersedes)
		}
		fmt.Println()
		fmt.Printf("  observer %s (%.4f, %.4f)\n", e.Observer.Name, e.Observer.Latitude, e.Observer.Longitude)
		if len(e.ScriptureRefs) > 0 {
			fmt.Printf("  refs: %s\n", strings.Join(e.ScriptureRefs, "; "))
		}
		if e.Verification.Reason != "" {
			fmt.Printf("  %s\n", e.Verification.Reason)
		}
	}
	return nil
}

func presetLabels() []string {
	presets := catalog.Presets()
	labels := make([]string, 0, len(presets))
	for _, p := range presets {
		labels = append(labels, p.Label)
	}
	return labels
}

func init() {
	catalogAddCmd.Flags().String("entry", "", "entry YAML file")
	catalogAddCmd.Flags().String("event", "", "built-in preset name")
	catalogAddCmd.Flags().Bool("supersede", false, "replace the current entry for this key")

	catalogGetCmd.Flags().Bool("history", false, "print the full supersede chain")

	catalogListCmd.Flags().String("from", "", "range start (Julian day or YYYY-MM-DD)")
	catalogListCmd.Flags().String("to", "", "range end")
	catalogListCmd.Flags().String("status", "", "filter by verification status")
	catalogListCmd.Flags().Bool("json", false, "output entries as JSON")

	catalogCmd.AddCommand(catalogAddCmd)
	catalogCmd.AddCommand(catalogGetCmd)
	catalogCmd.AddCommand(catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
