// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package template selects a content template and semantic keyword
// variations for a generation request.
// Implements: prd012-templates (R1-R4);
//
//	docs/ARCHITECTURE § Template Selection.
package template

import (
	"fmt"
	"strings"

	"github.com/pdiddy/article-engine/pkg/types"
)

// healthVocabulary triggers the empathetic-medical profile. Matched by
// substring against the lowercased keyword.
var healthVocabulary = []string{
	"vitamin", "deficiency", "symptom", "disease", "syndrome", "disorder",
	"diagnosis", "treatment", "supplement", "mineral", "chronic", "medication",
	"blood test", "thyroid", "anemia", "zinc", "magnesium",
}

// marketingVocabulary triggers the analytical profile.
var marketingVocabulary = []string{
	"marketing", "seo", "branding", "advertising", "conversion", "lead",
	"business", "startup", "revenue", "sales", "dropshipping", "affiliate",
	"ecommerce", "passive income", "monetize",
}

// technologyVocabulary triggers the instructional profile.
var technologyVocabulary = []string{
	"software", "programming", "code", "api", "cloud", "machine learning",
	"artificial intelligence", "automation", "app", "saas", "cybersecurity",
}

// curatedVariations holds hand-written semantic variation lists for known
// high-value keywords. Checked by substring, longest cue first.
var curatedVariations = map[string][]string{
	"vitamin d deficiency": {
		"low vitamin D levels",
		"insufficient vitamin D",
		"vitamin D insufficiency",
		"a lack of vitamin D",
		"this deficiency",
	},
	"vitamin d": {
		"the sunshine vitamin",
		"vitamin D3",
		"your vitamin D status",
	},
	"zinc": {
		"this essential mineral",
		"zinc intake",
		"your zinc levels",
	},
	"dropshipping": {
		"the dropshipping model",
		"this fulfillment model",
		"running a dropshipping store",
	},
	"affiliate marketing": {
		"the affiliate model",
		"promoting partner products",
		"affiliate promotion",
	},
}

// Select returns the content template for a keyword. Health-domain
// keywords receive the empathetic-medical profile with its downstream
// disclaimer and reviewer-box obligations; marketing/business keywords
// receive the analytical profile; technology keywords the instructional
// one; everything else the generic informative profile (R2).
//
// The audience hint only refines UserFocusArea; it never changes the
// profile, so classification stays a function of the keyword alone.
func Select(keyword, audience string) types.ContentTemplate {
	kw := strings.ToLower(strings.TrimSpace(keyword))

	tmpl := types.ContentTemplate{
		ToneProfile:   types.ProfileInformative,
		LanguageStyle: "clear everyday language",
		StructureType: types.StructureTopicOverview,
		UserFocusArea: "building a working understanding of the topic",
	}

	switch {
	case matchesAny(kw, healthVocabulary):
		tmpl.ToneProfile = types.ProfileEmpatheticMedical
		tmpl.LanguageStyle = "plain-language clinical"
		tmpl.StructureType = types.StructureSymptomToTreatment
		tmpl.UserFocusArea = "recognizing the problem and knowing what to do next"
	case matchesAny(kw, marketingVocabulary):
		tmpl.ToneProfile = types.ProfileAnalytical
		tmpl.LanguageStyle = "direct practitioner"
		tmpl.StructureType = types.StructureStrategic
		tmpl.UserFocusArea = "making better decisions with concrete numbers"
	case matchesAny(kw, technologyVocabulary):
		tmpl.ToneProfile = types.ProfileInstructional
		tmpl.LanguageStyle = "hands-on technical"
		tmpl.StructureType = types.StructureStepByStep
		tmpl.UserFocusArea = "getting from zero to a working result"
	}

	if a := strings.TrimSpace(audience); a != "" {
		tmpl.UserFocusArea = fmt.Sprintf("%s, written for %s", tmpl.UserFocusArea, a)
	}

	tmpl.SemanticKeywords = SemanticVariations(keyword)
	return tmpl
}

// SemanticVariations returns natural-language variations of the keyword
// used downstream to avoid verbatim repetition (R3). Curated lists win for
// known keywords; otherwise variations are derived by prepending
// qualifiers. The list is always non-empty for a non-empty keyword.
func SemanticVariations(keyword string) []string {
	kw := strings.TrimSpace(keyword)
	if kw == "" {
		return nil
	}
	lower := strings.ToLower(kw)

	best := ""
	for cue := range curatedVariations {
		if strings.Contains(lower, cue) && len(cue) > len(best) {
			best = cue
		}
	}
	if best != "" {
		return append([]string(nil), curatedVariations[best]...)
	}

	return []string{
		"understanding " + lower,
		"dealing with " + lower,
		"your approach to " + lower,
		"the topic of " + lower,
	}
}

func matchesAny(kw string, vocabulary []string) bool {
	for _, cue := range vocabulary {
		if strings.Contains(kw, cue) {
			return true
		}
	}
	return false
}
