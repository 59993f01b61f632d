// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mwhitt/sky-engine/internal/scripture"
)

var passagesCmd = &cobra.Command{
	Use:   "passages [query]",
	Short: "Search scripture passages with celestial language",
	Long: `Passages searches the built-in corpus of passages with explicit
celestial language and prints the best matches with their theme tags. With
--ref, one citation is looked up instead (using the remote passage API for
references outside the corpus).`,
	RunE: runPassages,
}

func init() {
	passagesCmd.Flags().String("ref", "", "look up one citation instead of searching")
	passagesCmd.Flags().Bool("json", false, "output passages as JSON")

	rootCmd.AddCommand(passagesCmd)
}

func runPassages(cmd *cobra.Command, args []string) error {
	cfg := engineConfig()
	svc := scripture.NewService(cfg.Scripture)
	jsonOutput, _ := cmd.Flags().GetBool("json")

	if ref, _ := cmd.Flags().GetString("ref"); ref != "" {
		passage, err := svc.Lookup(context.Background(), ref)
		if err != nil {
			return err
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(passage)
		}
		fmt.Printf("%s\n%s\n", passage.Reference, passage.Text)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("query or --ref required")
	}

	results := svc.Search(strings.Join(args, " "))
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No passages found.")
		return nil
	}
	for _, p := range results {
		fmt.Printf("%-20s  %.2f  %s\n", p.Reference, p.Score, strings.Join(p.Tags, ","))
		fmt.Printf("  %s\n", p.Text)
	}
	return nil
}
