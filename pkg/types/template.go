// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ToneProfile is the selected voice for the whole article. Unlike Tone
// (the caller's request) a profile also implies structural obligations:
// the empathetic-medical profile requires a disclaimer line, a reviewer
// box, and citation post-processing downstream.
type ToneProfile string

const (
	ProfileEmpatheticMedical ToneProfile = "empathetic_medical"
	ProfileAnalytical        ToneProfile = "analytical"
	ProfileInstructional     ToneProfile = "instructional"
	ProfileInformative       ToneProfile = "informative"
)

// StructureType names the macro-structure the section planner follows.
type StructureType string

const (
	StructureSymptomToTreatment StructureType = "symptom_diagnosis_treatment"
	StructureStrategic          StructureType = "strategic_framework"
	StructureStepByStep         StructureType = "step_by_step"
	StructureTopicOverview      StructureType = "topic_overview"
)

// ContentTemplate is the per-request template descriptor. Selected once by
// the template stage and constant for the rest of the request.
// Per prd012-templates R2.
type ContentTemplate struct {
	// ToneProfile is the selected voice.
	ToneProfile ToneProfile `json:"tone_profile" yaml:"tone_profile"`

	// LanguageStyle is a short free-text style tag fed into phrase
	// selection (e.g. "plain-language clinical", "direct practitioner").
	LanguageStyle string `json:"language_style" yaml:"language_style"`

	// StructureType names the macro-structure for section planning.
	StructureType StructureType `json:"structure_type" yaml:"structure_type"`

	// UserFocusArea describes what the assumed reader wants from the
	// article (e.g. "recognizing and resolving a deficiency").
	UserFocusArea string `json:"user_focus_area" yaml:"user_focus_area"`

	// SemanticKeywords holds natural-language variations of the primary
	// keyword, used to avoid verbatim repetition. Always non-empty.
	SemanticKeywords []string `json:"semantic_keywords" yaml:"semantic_keywords"`
}

// RequiresMedicalReview reports whether the profile obliges the assembler
// to emit the medical disclaimer and reviewer box.
func (t ContentTemplate) RequiresMedicalReview() bool {
	return t.ToneProfile == ProfileEmpatheticMedical
}

// Variation returns the i-th semantic keyword variation, cycling through
// the list. Falls back to the empty string only for a zero-value template.
func (t ContentTemplate) Variation(i int) string {
	if len(t.SemanticKeywords) == 0 {
		return ""
	}
	return t.SemanticKeywords[i%len(t.SemanticKeywords)]
}
