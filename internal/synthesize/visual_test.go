package synthesize

import (
	"strings"
	"testing"
)

func TestVisualBlockRelevance(t *testing.T) {
	block := VisualBlock("Common Signs and Symptoms of Vitamin D Deficiency", "vitamin d deficiency", 0)
	if !strings.Contains(block, "symptom-overview-chart") {
		t.Errorf("symptom heading should pick the symptom chart:\n%s", block)
	}

	block = VisualBlock("Realistic Earnings Expectations", "dropshipping", 2)
	if !strings.Contains(block, "income-growth-curve") {
		t.Errorf("earnings heading should pick the income curve:\n%s", block)
	}
}

func TestVisualBlockGuaranteedFallback(t *testing.T) {
	block := VisualBlock("Xyzzy Quux", "unrelated nonsense", 1)
	if !strings.Contains(block, "![") {
		t.Errorf("fallback visual must always render an image:\n%s", block)
	}
	if !strings.Contains(block, "topic-overview") {
		t.Errorf("unmatched tokens should select the generic asset:\n%s", block)
	}
}

func TestVisualBlockInlineTable(t *testing.T) {
	block := VisualBlock("Understanding Your Vitamin D Test Results", "vitamin d", 1)
	if !strings.Contains(block, "| Zone | Typical action |") {
		t.Errorf("testing visual should carry its inline table:\n%s", block)
	}
}

func TestVisualBlockIndexInFilename(t *testing.T) {
	block := VisualBlock("Anything", "whatever", 2)
	if !strings.Contains(block, "-3.png") {
		t.Errorf("image filename should carry the 1-based section number:\n%s", block)
	}
}
