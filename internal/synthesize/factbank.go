// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed banks.yaml
var banksYAML []byte

// TestingRow is one row of a clinical reference-range table.
type TestingRow struct {
	Level   string `yaml:"level"`
	Range   string `yaml:"range"`
	Meaning string `yaml:"meaning"`
}

// DosageRow is one row of a dosage guidance table.
type DosageRow struct {
	Group string `yaml:"group"`
	Dose  string `yaml:"dose"`
	Notes string `yaml:"notes"`
}

// FactBank is the consolidated per-topic content bank consumed by the
// specialized generators. One keyed lookup replaces the per-function fact
// lists the generators would otherwise each carry.
type FactBank struct {
	// Topic is the substring cue that selects this bank.
	Topic string `yaml:"topic"`

	// DisplayName is the reader-facing topic name (e.g. "vitamin D").
	DisplayName string `yaml:"display_name"`

	Symptoms   []string     `yaml:"symptoms"`
	RiskGroups []string     `yaml:"risk_groups"`
	Causes     []string     `yaml:"causes"`
	Foods      []string     `yaml:"foods"`
	Testing    []TestingRow `yaml:"testing"`
	Dosage     []DosageRow  `yaml:"dosage"`

	// Absorption lists factors that help or hinder uptake, prefixed with
	// "+" or "-" in the data file.
	Absorption []string `yaml:"absorption"`

	// RecoveryNote is a short prose note on expected timelines.
	RecoveryNote string `yaml:"recovery_note"`

	// Journal names cited by this bank's content, linkable by the
	// citation post-processor.
	Journals []string `yaml:"journals"`
}

type bankFile struct {
	Banks []FactBank `yaml:"banks"`
}

var (
	banksOnce sync.Once
	banks     []FactBank
	banksErr  error
)

// loadBanks parses the embedded bank data once. A malformed data file is a
// build defect; callers treat it as "no bank matched".
func loadBanks() []FactBank {
	banksOnce.Do(func() {
		var f bankFile
		if err := yaml.Unmarshal(banksYAML, &f); err != nil {
			banksErr = fmt.Errorf("parsing embedded fact banks: %w", err)
			return
		}
		banks = f.Banks
	})
	return banks
}

// BankFor returns the fact bank whose topic cue matches the keyword, or
// nil when no bank matches. Longest matching cue wins so "vitamin d
// deficiency" content is not shadowed by a broader "vitamin" bank.
func BankFor(keyword string) *FactBank {
	kw := strings.ToLower(keyword)
	var best *FactBank
	for i := range loadBanks() {
		b := &loadBanks()[i]
		if strings.Contains(kw, b.Topic) {
			if best == nil || len(b.Topic) > len(best.Topic) {
				best = b
			}
		}
	}
	return best
}
