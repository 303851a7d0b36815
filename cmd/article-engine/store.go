// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/store"
	"github.com/pdiddy/article-engine/pkg/types"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Manage the local article store (list, show, export, delete)",
	Long: `Store manages the SQLite article database written by generate --save.
Use subcommands to list stored articles with full-text search, print one,
export it to markdown with a metrics sidecar, or delete it.`,
}

// --- list subcommand ---

var storeListCmd = &cobra.Command{
	Use:   "list [query]",
	Short: "List stored articles, optionally filtered by search or category",
	RunE:  runStoreList,
}

func runStoreList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	query, _ := cmd.Flags().GetString("query")
	if query == "" && len(args) > 0 {
		query = strings.Join(args, " ")
	}
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

	summaries, err := s.List(context.Background(), store.ListOptions{
		Query:      query,
		Category:   types.TopicCategory(category),
		MaxResults: limit,
	})
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	if len(summaries) == 0 {
		fmt.Println("No articles found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-36s  %-30s  %-14s  %6s  %4s  %s\n",
		"ID", "Keyword", "Category", "Words", "SEO", "Generated")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))
	for _, sum := range summaries {
		keyword := sum.PrimaryKeyword
		if len(keyword) > 30 {
			keyword = keyword[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-36s  %-30s  %-14s  %6d  %4d  %s\n",
			sum.ID, keyword, sum.Category, sum.WordCount, sum.SEOScore,
			sum.GeneratedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(os.Stdout, "\n%d articles\n", len(summaries))
	return nil
}

// --- show subcommand ---

var storeShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Print a stored article's markdown to stdout",
	RunE:  runStoreShow,
}

func runStoreShow(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one article ID")
	}
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	doc, err := s.Get(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Print(doc.Markdown)
	return nil
}

// --- export subcommand ---

var storeExportCmd = &cobra.Command{
	Use:   "export [id]",
	Short: "Export a stored article to markdown with a metrics sidecar",
	RunE:  runStoreExport,
}

func runStoreExport(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one article ID")
	}
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path, err := s.Export(context.Background(), args[0])
	if err != nil {
		return err
	}
	fmt.Println("Exported to", path)
	return nil
}

// --- delete subcommand ---

var storeDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a stored article",
	RunE:  runStoreDelete,
}

func runStoreDelete(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("provide exactly one article ID")
	}
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Delete(context.Background(), args[0]); err != nil {
		return err
	}
	fmt.Println("Deleted", args[0])
	return nil
}

// --- shared helpers ---

func openStore(cmd *cobra.Command) (*store.Store, error) {
	return store.NewStore(storeConfigFromFlags(cmd))
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	storeCmd.PersistentFlags().String("articles-dir", "articles", "base directory for the article store (contains index/, markdown/)")
	storeCmd.PersistentFlags().Int("limit", 20, "maximum number of list results")

	storeListCmd.Flags().String("query", "", "full-text search over keyword and body")
	storeListCmd.Flags().String("category", "", "filter by topic category")
	storeListCmd.Flags().Bool("json", false, "output results as JSON")

	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeShowCmd)
	storeCmd.AddCommand(storeExportCmd)
	storeCmd.AddCommand(storeDeleteCmd)
	rootCmd.AddCommand(storeCmd)
}
