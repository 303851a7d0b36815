// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/article-engine/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [keyword]",
	Short: "Classify a keyword phrase into a topic category",
	Long: `Classify maps a keyword phrase to the topic category that drives template
selection and section planning. Classification is ordered substring matching
against a fixed cue table; unmatched keywords resolve to general.`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide a keyword phrase to classify")
	}
	keyword := strings.Join(args, " ")
	fmt.Println(classify.Classify(keyword))
	return nil
}
