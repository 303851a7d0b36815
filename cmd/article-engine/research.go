// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/classify"
	"github.com/pdiddy/article-engine/internal/research"
)

var researchCmd = &cobra.Command{
	Use:   "research [keyword]",
	Short: "Run research aggregation for a keyword and print the bundle",
	Long: `Research runs the aggregation stage on its own: concurrent lookups with
per-provider failure isolation, deduplication, and deterministic fallback
when every provider comes back empty. The resulting bundle is printed as a
table or JSON.

Live SERP lookup requires --live and a serp-api-key secret (or --serp-key).`,
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().Bool("live", false, "enable the live SERP lookup provider")
	researchCmd.Flags().String("serp-key", "", "SERP API key (default: serp-api-key secret)")
	researchCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 15s)")
	researchCmd.Flags().Int("max-results", 8, "maximum results to keep")
	researchCmd.Flags().Bool("json", false, "output the bundle as JSON")

	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a keyword phrase to research")
	}
	keyword := strings.Join(args, " ")
	category := classify.Classify(keyword)
	cfg := researchConfig(cmd)

	providers := research.DefaultProviders(category, cfg)
	bundle := research.Aggregate(context.Background(), keyword, category, providers, cfg, logger)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		return research.FormatJSON(bundle, os.Stdout)
	}
	research.FormatTable(bundle, os.Stdout)
	return nil
}
