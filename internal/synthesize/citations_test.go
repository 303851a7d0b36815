package synthesize

import (
	"strings"
	"testing"
)

func TestApplyCitationsMarksStatisticalSentences(t *testing.T) {
	in := "An estimated 1 billion people are affected. This sentence has no numbers in it."
	out := ApplyCitations(in)

	if !strings.Contains(out, "affected"+citationMark+".") {
		t.Errorf("statistical sentence not marked:\n%s", out)
	}
	if strings.Contains(out, "in it"+citationMark) {
		t.Error("non-statistical sentence must not be marked")
	}
}

func TestApplyCitationsPercentAndRatio(t *testing.T) {
	tests := []string{
		"About 35% of adults are deficient.",
		"Roughly 1 in 4 people fall short.",
		"Studies show a consistent pattern.",
	}
	for _, in := range tests {
		if out := ApplyCitations(in); !strings.Contains(out, citationMark) {
			t.Errorf("ApplyCitations(%q) missing marker: %q", in, out)
		}
	}
}

func TestApplyCitationsLinksJournals(t *testing.T) {
	in := "Published in The American Journal of Clinical Nutrition last year."
	out := ApplyCitations(in)
	if !strings.Contains(out, "[The American Journal of Clinical Nutrition](https://academic.oup.com/ajcn)") {
		t.Errorf("journal name not linked:\n%s", out)
	}
}

func TestApplyCitationsLeavesTablesAlone(t *testing.T) {
	in := "| Deficient | Below 20 ng/mL | 35% of adults |\n|---|---|---|"
	if out := ApplyCitations(in); strings.Contains(out, citationMark) {
		t.Errorf("table rows must not gain citation markers:\n%s", out)
	}
}

func TestApplyCitationsIdempotent(t *testing.T) {
	in := "About 35% of adults are deficient."
	once := ApplyCitations(in)
	twice := ApplyCitations(once)
	if once != twice {
		t.Errorf("ApplyCitations not idempotent:\n%q\nvs\n%q", once, twice)
	}
}

func TestSplitSentences(t *testing.T) {
	got := splitSentences("First sentence. Second one! Third?")
	if len(got) != 3 {
		t.Fatalf("got %d sentences, want 3: %v", len(got), got)
	}
	if got[0] != "First sentence." || got[2] != "Third?" {
		t.Errorf("unexpected split: %v", got)
	}
}
