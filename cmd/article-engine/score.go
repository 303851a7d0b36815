// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/validate"
	"github.com/pdiddy/article-engine/pkg/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file.md]",
	Short: "Score an existing markdown article",
	Long: `Score computes validation metrics for a markdown file: word count,
reading time, keyword density, structural counts, and heuristic SEO,
E-E-A-T, and readability scores. Metrics describe the document; they never
modify it.`,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().String("keyword", "", "primary keyword for density scoring (required)")
	scoreCmd.Flags().Int("wpm", 200, "words-per-minute divisor for reading time")
	scoreCmd.Flags().Bool("json", false, "output metrics as JSON")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one markdown file to score")
	}
	keyword, _ := cmd.Flags().GetString("keyword")
	if keyword == "" {
		return fmt.Errorf("--keyword is required for density scoring")
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	wpm, _ := cmd.Flags().GetInt("wpm")
	metrics := validate.Score(string(data), keyword, types.ValidationConfig{WordsPerMinute: wpm})

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(metrics)
	}

	fmt.Fprintf(os.Stdout, "words:        %d\n", metrics.WordCount)
	fmt.Fprintf(os.Stdout, "reading time: %d min\n", metrics.ReadingTimeMinutes)
	fmt.Fprintf(os.Stdout, "density:      %.1f%%\n", metrics.KeywordDensity)
	fmt.Fprintf(os.Stdout, "seo:          %d\n", metrics.SEOScore)
	fmt.Fprintf(os.Stdout, "eeat:         %d\n", metrics.EEATScore)
	fmt.Fprintf(os.Stdout, "readability:  %d\n", metrics.ReadabilityScore)
	fmt.Fprintf(os.Stdout, "headings:     %d\n", metrics.HeadingCount)
	fmt.Fprintf(os.Stdout, "paragraphs:   %d\n", metrics.ParagraphCount)
	fmt.Fprintf(os.Stdout, "citations=%t references=%t author=%t toc=%t faq=%t\n",
		metrics.HasCitations, metrics.HasReferences, metrics.HasAuthorInfo,
		metrics.HasTOC, metrics.HasFAQ)
	return nil
}
