// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/engine"
	"github.com/pdiddy/article-engine/internal/plan"
	"github.com/pdiddy/article-engine/internal/store"
	"github.com/pdiddy/article-engine/pkg/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate [keywords]",
	Short: "Generate a complete SEO article from a keyword phrase",
	Long: `Generate runs the full pipeline for one keyword phrase (or a batch read
from --keywords-file, one phrase per line) and writes the finished markdown
to the output directory. Degraded research is tolerated: a valid keyword
always yields a complete article.

The first comma-separated keyword is the primary keyword; it drives
classification, template selection, and scoring.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("keywords", "", "comma-separated target keywords (first is primary)")
	generateCmd.Flags().String("keywords-file", "", "batch file with one keyword phrase per line")
	generateCmd.Flags().Int("length", 2000, "target article word count")
	generateCmd.Flags().String("tone", "informative", "tone: informative, conversational, professional, authoritative")
	generateCmd.Flags().String("audience", "", "target audience description")
	generateCmd.Flags().String("seo-level", "", "SEO aggressiveness: basic, moderate, aggressive")
	generateCmd.Flags().String("research-data", "", "path to a file with supplemental research text")
	generateCmd.Flags().Bool("images", false, "embed visual-content blocks in leading sections")
	generateCmd.Flags().Bool("faqs", false, "append a generated FAQ section")
	generateCmd.Flags().Bool("prevent-repetition", false, "substitute semantic variations for the literal keyword")
	generateCmd.Flags().Bool("examples", false, "include concrete examples in generic sections")
	generateCmd.Flags().Bool("statistics", false, "emphasize statistics in generic sections")
	generateCmd.Flags().Bool("case-studies", false, "include case-study callouts in generic sections")
	generateCmd.Flags().Int("specificity", 0, "0-100 dial favoring concrete numbers over general prose")
	generateCmd.Flags().Int64("seed", 0, "pin the title/phrase picker for reproducible output (0 = time-seeded)")
	generateCmd.Flags().Int("visual-limit", 3, "number of leading sections eligible for visuals")
	generateCmd.Flags().Int("max-sections", 15, "upper bound on planned sections")
	generateCmd.Flags().Bool("live", false, "enable the live SERP lookup provider")
	generateCmd.Flags().String("serp-key", "", "SERP API key (default: serp-api-key secret)")
	generateCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 15s)")
	generateCmd.Flags().Int("max-results", 8, "maximum research results to keep")
	generateCmd.Flags().String("output-dir", "articles/markdown", "directory for generated markdown")
	generateCmd.Flags().Bool("save", false, "persist generated articles to the article store")
	generateCmd.Flags().String("articles-dir", "articles", "base directory for the article store")
	generateCmd.Flags().Bool("json", false, "print metrics as JSON instead of a summary line")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	phrases, err := keywordPhrases(cmd, args)
	if err != nil {
		return err
	}

	cfg := pipelineConfig(cmd)
	base := optionsFromFlags(cmd)

	outputDir, _ := cmd.Flags().GetString("output-dir")
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	save, _ := cmd.Flags().GetBool("save")
	var articles *store.Store
	if save {
		articles, err = store.NewStore(cfg.Store)
		if err != nil {
			return err
		}
		defer articles.Close()
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	failed := 0

	for _, phrase := range phrases {
		opts := base
		opts.TargetKeywords = phrase

		doc, err := engine.Generate(context.Background(), opts, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed  %s: %v\n", phrase, err)
			failed++
			continue
		}

		name := plan.Slugify(doc.PrimaryKeyword) + ".md"
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, []byte(doc.Markdown), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		if articles != nil {
			if err := articles.Save(context.Background(), &doc); err != nil {
				return err
			}
		}

		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc.Metrics); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(os.Stdout, "generated %s (%s, %d words, SEO %d, E-E-A-T %d)\n",
				path, doc.Category, doc.Metrics.WordCount, doc.Metrics.SEOScore, doc.Metrics.EEATScore)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d keyword phrase(s) failed generation", failed)
	}
	return nil
}

// keywordPhrases resolves the batch of keyword phrases to generate: the
// --keywords flag or positional args for a single article, or one phrase
// per non-empty line of --keywords-file.
func keywordPhrases(cmd *cobra.Command, args []string) ([]string, error) {
	file, _ := cmd.Flags().GetString("keywords-file")
	if file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("opening keywords file: %w", err)
		}
		defer f.Close()

		var phrases []string
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			phrases = append(phrases, line)
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading keywords file: %w", err)
		}
		if len(phrases) == 0 {
			return nil, fmt.Errorf("keywords file %s contains no keyword phrases", file)
		}
		return phrases, nil
	}

	keywords, _ := cmd.Flags().GetString("keywords")
	if keywords == "" && len(args) > 0 {
		keywords = strings.Join(args, " ")
	}
	if strings.TrimSpace(keywords) == "" {
		return nil, fmt.Errorf("provide keywords via an argument, --keywords, or --keywords-file")
	}
	return []string{keywords}, nil
}

// optionsFromFlags builds the GenerationOptions shared by every phrase in
// the batch. TargetKeywords is filled per phrase by the caller.
func optionsFromFlags(cmd *cobra.Command) types.GenerationOptions {
	length, _ := cmd.Flags().GetInt("length")
	tone, _ := cmd.Flags().GetString("tone")
	audience, _ := cmd.Flags().GetString("audience")
	seoLevel, _ := cmd.Flags().GetString("seo-level")
	images, _ := cmd.Flags().GetBool("images")
	faqs, _ := cmd.Flags().GetBool("faqs")
	preventRep, _ := cmd.Flags().GetBool("prevent-repetition")
	examples, _ := cmd.Flags().GetBool("examples")
	statistics, _ := cmd.Flags().GetBool("statistics")
	caseStudies, _ := cmd.Flags().GetBool("case-studies")
	specificity, _ := cmd.Flags().GetInt("specificity")

	var researchData string
	if path, _ := cmd.Flags().GetString("research-data"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			researchData = string(data)
		} else {
			fmt.Fprintf(os.Stderr, "warning: research data file unreadable: %v\n", err)
		}
	}

	return types.GenerationOptions{
		ResearchData:       researchData,
		ArticleLength:      length,
		Tone:               types.Tone(tone),
		IncludeImages:      images,
		IncludeFAQs:        faqs,
		SEOLevel:           types.SEOLevel(seoLevel),
		TargetAudience:     audience,
		ContentSpecificity: specificity,
		PreventRepetition:  preventRep,
		IncludeExamples:    examples,
		IncludeStatistics:  statistics,
		UseCaseStudies:     caseStudies,
	}
}
