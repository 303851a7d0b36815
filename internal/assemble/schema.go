// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assemble

import (
	"encoding/json"
	"fmt"
	"time"
)

// articleSchema is the JSON-LD payload appended to every document. Field
// order is fixed by the struct so output is stable across runs.
type articleSchema struct {
	Context       string `json:"@context"`
	Type          string `json:"@type"`
	Headline      string `json:"headline"`
	Keywords      string `json:"keywords"`
	WordCount     int    `json:"wordCount"`
	DatePublished string `json:"datePublished"`
	Author        struct {
		Type string `json:"@type"`
		Name string `json:"name"`
	} `json:"author"`
}

// SchemaBlock renders the machine-readable schema markup block. It always
// carries the final computed word count (R4.2).
func SchemaBlock(title, keyword string, wordCount int, now time.Time) string {
	s := articleSchema{
		Context:       "https://schema.org",
		Type:          "Article",
		Headline:      title,
		Keywords:      keyword,
		WordCount:     wordCount,
		DatePublished: now.Format("2006-01-02"),
	}
	s.Author.Type = "Organization"
	s.Author.Name = "Editorial Team"

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		// Marshalling a plain struct cannot fail; keep the document whole
		// regardless.
		return ""
	}
	return fmt.Sprintf("```json\n%s\n```", data)
}
