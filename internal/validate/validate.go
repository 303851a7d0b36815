// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package validate scores a finished article. Metrics describe the document
// for display and reporting; nothing here feeds back into generation.
//
// Implements: prd016-validation (R1-R4); docs/ARCHITECTURE § Scoring.
package validate

import (
	"math"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/pdiddy/article-engine/internal/plan"
	"github.com/pdiddy/article-engine/pkg/types"
)

// defaultWordsPerMinute is the reading-time divisor when the config leaves
// it unset.
const defaultWordsPerMinute = 200

// Score computes ValidationMetrics for an assembled markdown document.
// All scores are deterministic functions of the document text and the
// primary keyword.
func Score(markdown, primaryKeyword string, cfg types.ValidationConfig) types.ValidationMetrics {
	wpm := cfg.WordsPerMinute
	if wpm <= 0 {
		wpm = defaultWordsPerMinute
	}

	var m types.ValidationMetrics

	words := strings.Fields(markdown)
	m.WordCount = len(words)
	if m.WordCount > 0 {
		m.ReadingTimeMinutes = int(math.Ceil(float64(m.WordCount) / float64(wpm)))
	}

	m.KeywordDensity = keywordDensity(markdown, primaryKeyword, m.WordCount)

	st := inspect([]byte(markdown))
	m.HeadingCount = st.headings
	m.ParagraphCount = st.paragraphs
	m.HasTOC = st.hasTOC
	m.HasFAQ = st.hasFAQ
	m.HasReferences = st.hasReferences

	m.HasCitations = strings.Contains(markdown, "^[")
	m.HasAuthorInfo = strings.Contains(markdown, "Medically reviewed") ||
		strings.Contains(markdown, "Editorial Team")

	m.SEOScore = seoScore(m, st.anchorsResolve)
	m.EEATScore = eeatScore(m)
	m.ReadabilityScore = readabilityScore(markdown, m)

	return m
}

// keywordDensity is 100*occurrences/words, rounded to one decimal and
// bounded to [0,100]. Occurrences are case-insensitive phrase matches.
func keywordDensity(markdown, keyword string, words int) float64 {
	keyword = strings.TrimSpace(strings.ToLower(keyword))
	if keyword == "" || words == 0 {
		return 0
	}
	occ := strings.Count(strings.ToLower(markdown), keyword)
	d := 100 * float64(occ) / float64(words)
	d = math.Round(d*10) / 10
	return math.Min(math.Max(d, 0), 100)
}

// structure holds the counts gathered from a single AST walk.
type structure struct {
	headings       int
	paragraphs     int
	hasTOC         bool
	hasFAQ         bool
	hasReferences  bool
	anchorsResolve bool
}

// inspect parses the document and walks the AST once, collecting structural
// counts and checking that every intra-document anchor link resolves to the
// slug of some heading.
func inspect(source []byte) structure {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(source))

	st := structure{}
	slugs := map[string]bool{}
	var anchors []string

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Heading:
			st.headings++
			txt := nodeText(node, source)
			slugs[plan.Slugify(txt)] = true
			switch txt {
			case "Table of Contents":
				st.hasTOC = true
			case "Frequently Asked Questions":
				st.hasFAQ = true
			case "References":
				st.hasReferences = true
			}
		case *gmast.Paragraph:
			st.paragraphs++
		case *gmast.Link:
			dest := string(node.Destination)
			if strings.HasPrefix(dest, "#") {
				anchors = append(anchors, strings.TrimPrefix(dest, "#"))
			}
		}
		return gmast.WalkContinue, nil
	})

	st.anchorsResolve = true
	for _, a := range anchors {
		if !slugs[a] {
			st.anchorsResolve = false
			break
		}
	}
	return st
}

// nodeText flattens a node's inline children to plain text.
func nodeText(n gmast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *gmast.Text:
			b.Write(t.Segment.Value(source))
		case *gmast.String:
			b.Write(t.Value)
		default:
			b.WriteString(nodeText(c, source))
		}
	}
	return b.String()
}

// seoScore rewards on-page structure: a TOC whose anchors resolve, enough
// section headings, keyword density in the useful band, and adequate length.
func seoScore(m types.ValidationMetrics, anchorsResolve bool) int {
	score := 30
	if m.HasTOC {
		score += 10
	}
	if m.HasTOC && anchorsResolve {
		score += 10
	}
	if m.HeadingCount >= 8 {
		score += 15
	} else if m.HeadingCount >= 5 {
		score += 8
	}
	if m.KeywordDensity >= 0.5 && m.KeywordDensity <= 3.0 {
		score += 15
	} else if m.KeywordDensity > 0 {
		score += 5
	}
	if m.WordCount >= 1500 {
		score += 10
	} else if m.WordCount >= 600 {
		score += 5
	}
	if m.HasFAQ {
		score += 10
	}
	return clampScore(score)
}

// eeatScore rewards trust signals: citations, a references section, visible
// author or reviewer information, and substantive length.
func eeatScore(m types.ValidationMetrics) int {
	score := 30
	if m.HasCitations {
		score += 20
	}
	if m.HasReferences {
		score += 20
	}
	if m.HasAuthorInfo {
		score += 20
	}
	if m.WordCount >= 1000 {
		score += 10
	}
	return clampScore(score)
}

// readabilityScore starts from 100 and penalizes long sentences and long
// paragraphs, the two signals available without a syllable model.
func readabilityScore(markdown string, m types.ValidationMetrics) int {
	if m.WordCount == 0 {
		return 0
	}
	sentences := countSentences(markdown)
	if sentences == 0 {
		sentences = 1
	}
	score := 100.0

	avgSentence := float64(m.WordCount) / float64(sentences)
	if avgSentence > 20 {
		score -= 2 * (avgSentence - 20)
	}

	paragraphs := m.ParagraphCount
	if paragraphs == 0 {
		paragraphs = 1
	}
	avgParagraph := float64(m.WordCount) / float64(paragraphs)
	if avgParagraph > 120 {
		score -= (avgParagraph - 120) / 4
	}

	return clampScore(int(math.Round(score)))
}

// countSentences counts terminal punctuation followed by whitespace or
// end-of-text. Markdown list markers and table pipes do not terminate
// sentences, so the count skews low on structured documents; that is
// acceptable for a relative readability signal.
func countSentences(s string) int {
	n := 0
	for i, r := range s {
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 >= len(s) || s[i+1] == ' ' || s[i+1] == '\n' {
			n++
		}
	}
	return n
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
