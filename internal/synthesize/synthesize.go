// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package synthesize generates markdown section bodies. A section-type
// classifier routes each heading to a specialized medical generator or to
// the per-category generic generator; no heading is ever left without a
// body.
// Implements: prd014-synthesis (R1-R6);
//
//	docs/ARCHITECTURE § Section Synthesis.
package synthesize

import (
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// Request carries everything one section body needs. Built by the engine
// once per planned heading.
type Request struct {
	// Heading is the planned section heading.
	Heading string

	// Keyword is the primary keyword for the request.
	Keyword string

	// Variant is the semantic keyword variation assigned to this section,
	// used instead of the literal keyword when repetition prevention is on.
	Variant string

	// Bundle is the request's research bundle (read-only).
	Bundle types.ResearchBundle

	// Category is the classified topic category.
	Category types.TopicCategory

	// Template is the selected content template.
	Template types.ContentTemplate

	// Index is the section's zero-based position in the plan.
	Index int

	// Options is the original generation request.
	Options types.GenerationOptions

	// Config holds generator tuning knobs.
	Config types.GeneratorConfig
}

// subject returns the phrase used to refer to the topic in body text:
// the semantic variant when repetition prevention is on and a variant
// exists, the literal keyword otherwise.
func (r Request) subject() string {
	if r.Options.PreventRepetition && r.Variant != "" {
		return r.Variant
	}
	return r.Keyword
}

// sectionKind is the result of heading classification.
type sectionKind int

const (
	kindGeneric sectionKind = iota
	kindSymptoms
	kindTesting
	kindTreatment
	kindRisk
	kindAbsorption
	kindPrevention
	kindCauses
	kindFoodSources
	kindRecovery
	kindWhenToSeeDoctor
)

// headingCue pairs substring cues with a section kind. Evaluated in order;
// first match wins, so narrower cues come first.
type headingCue struct {
	kind sectionKind
	cues []string
}

var headingCues = []headingCue{
	{kindWhenToSeeDoctor, []string{"see a doctor", "talk to your doctor", "seek professional", "when to see"}},
	{kindTesting, []string{"test result", "testing", "diagnos", "blood test", "getting tested", "understanding your"}},
	{kindTreatment, []string{"treatment", "supplements, food", "dosage", "supplementation", "therapy"}},
	{kindAbsorption, []string{"absorption", "absorb", "bioavailab"}},
	{kindRisk, []string{"at risk", "risk factor", "who should consider", "who is most"}},
	{kindPrevention, []string{"prevent", "long term", "avoiding recurrence"}},
	{kindRecovery, []string{"recovery", "how long", "what to expect", "timeline"}},
	{kindFoodSources, []string{"food sources", "dietary sources", "foods", "diet and"}},
	{kindCauses, []string{"causes", "why it happens", "why it matters for your body"}},
	{kindSymptoms, []string{"symptom", "signs", "warning"}},
}

// classifyHeading maps a heading to a section kind by ordered substring
// matching against the lowercased text.
func classifyHeading(heading string) sectionKind {
	h := strings.ToLower(heading)
	for _, hc := range headingCues {
		for _, cue := range hc.cues {
			if strings.Contains(h, cue) {
				return hc.kind
			}
		}
	}
	return kindGeneric
}

// medicalGenerators routes specialized section kinds to their generators.
var medicalGenerators = map[sectionKind]func(Request, *FactBank) string{
	kindSymptoms:        symptomsSection,
	kindTesting:         testingSection,
	kindTreatment:       treatmentSection,
	kindRisk:            riskSection,
	kindAbsorption:      absorptionSection,
	kindPrevention:      preventionSection,
	kindCauses:          causesSection,
	kindFoodSources:     foodSourcesSection,
	kindRecovery:        recoverySection,
	kindWhenToSeeDoctor: whenToSeeDoctorSection,
}

// Section synthesizes the markdown body for one heading (R1). Medical
// topics with a recognized fact bank route through specialized generators;
// everything else goes through the per-category generic generator. A
// panicking generator is downgraded to the generic body so the document is
// always complete (R6).
func Section(req Request) (body string) {
	defer func() {
		if r := recover(); r != nil {
			body = genericSection(req)
			body = finishSection(req, body)
		}
	}()

	if req.Category.IsHealth() {
		if bank := BankFor(req.Keyword); bank != nil {
			if gen, ok := medicalGenerators[classifyHeading(req.Heading)]; ok {
				return finishSection(req, gen(req, bank))
			}
		}
	}

	return finishSection(req, genericSection(req))
}

// finishSection applies the shared post-processing: citation markup under
// the medical profile, then an optional visual block for leading sections.
func finishSection(req Request, body string) string {
	if req.Template.RequiresMedicalReview() {
		body = ApplyCitations(body)
	}

	limit := req.Config.VisualSectionLimit
	if limit <= 0 {
		limit = 3
	}
	if req.Options.IncludeImages && req.Index < limit {
		body = body + "\n\n" + VisualBlock(req.Heading, req.Keyword, req.Index)
	}
	return body
}
