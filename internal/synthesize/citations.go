// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	"fmt"
	"regexp"
	"strings"
)

// statisticalPhrase matches sentences that carry a quantitative claim:
// percentages, "1 in N" constructions, and study-attribution openers.
// Matched sentences receive a superscript citation marker.
var statisticalPhrase = regexp.MustCompile(
	`(?i)(\d+(?:\.\d+)?%|\d+ in \d+|studies (?:show|indicate|suggest)|research (?:shows|indicates|suggests)|an estimated \d)`)

// journalLinks maps recognized journal names to their canonical URLs.
// Mentions in body text are converted to markdown links.
var journalLinks = map[string]string{
	"The Journal of Clinical Endocrinology & Metabolism": "https://academic.oup.com/jcem",
	"The American Journal of Clinical Nutrition":         "https://academic.oup.com/ajcn",
	"The New England Journal of Medicine":                "https://www.nejm.org",
	"The Lancet":                                         "https://www.thelancet.com",
	"JAMA":                                               "https://jamanetwork.com",
}

// citationMark is the superscript marker appended to statistical sentences.
// A matching note is rendered in the document's references section.
const citationMark = "^[1]"

// ApplyCitations post-processes a medical-profile section body: sentences
// containing a recognized statistical phrase gain a superscript citation
// marker, and known journal names become links (R5). Only the medical
// tone profile routes through here; other profiles keep plain prose.
func ApplyCitations(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		// Leave tables, headings, images, and already-marked lines alone.
		if trimmed == "" ||
			strings.HasPrefix(trimmed, "|") ||
			strings.HasPrefix(trimmed, "#") ||
			strings.HasPrefix(trimmed, "!") ||
			strings.Contains(line, citationMark) {
			continue
		}
		if statisticalPhrase.MatchString(line) {
			lines[i] = markSentences(line)
		}
	}
	out := strings.Join(lines, "\n")

	for name, url := range journalLinks {
		linked := fmt.Sprintf("[%s](%s)", name, url)
		// Skip names already rendered as links.
		if strings.Contains(out, linked) {
			continue
		}
		out = strings.ReplaceAll(out, name, linked)
	}
	return out
}

// sentenceEnd finds sentence-terminating punctuation not inside a number.
var sentenceEnd = regexp.MustCompile(`([.!?])(\s|$)`)

// markSentences appends the citation marker to each sentence in line that
// contains a statistical phrase.
func markSentences(line string) string {
	sentences := splitSentences(line)
	for i, s := range sentences {
		if statisticalPhrase.MatchString(s) && !strings.Contains(s, citationMark) {
			sentences[i] = insertMark(s)
		}
	}
	return strings.Join(sentences, " ")
}

// splitSentences breaks a line at sentence boundaries, keeping terminal
// punctuation with its sentence.
func splitSentences(line string) []string {
	var out []string
	rest := line
	for {
		loc := sentenceEnd.FindStringIndex(rest)
		if loc == nil {
			if strings.TrimSpace(rest) != "" {
				out = append(out, strings.TrimSpace(rest))
			}
			return out
		}
		out = append(out, strings.TrimSpace(rest[:loc[0]+1]))
		rest = rest[loc[1]:]
	}
}

// insertMark places the citation marker before the sentence's terminal
// punctuation so superscripts read naturally.
func insertMark(sentence string) string {
	if n := len(sentence); n > 0 {
		switch sentence[n-1] {
		case '.', '!', '?':
			return sentence[:n-1] + citationMark + string(sentence[n-1])
		}
	}
	return sentence + citationMark
}
