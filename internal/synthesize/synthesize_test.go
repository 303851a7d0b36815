package synthesize

import (
	"strings"
	"testing"

	"github.com/pdiddy/article-engine/internal/research"
	"github.com/pdiddy/article-engine/internal/template"
	"github.com/pdiddy/article-engine/pkg/types"
)

func medicalRequest(t *testing.T, heading string, index int) Request {
	t.Helper()
	kw := "vitamin d deficiency symptoms"
	return Request{
		Heading:  heading,
		Keyword:  kw,
		Variant:  "low vitamin D levels",
		Bundle:   research.Fallback(kw, types.CategoryNutrition),
		Category: types.CategoryNutrition,
		Template: template.Select(kw, ""),
		Index:    index,
		Options:  types.GenerationOptions{TargetKeywords: kw},
		Config:   types.GeneratorConfig{VisualSectionLimit: 3},
	}
}

func TestClassifyHeading(t *testing.T) {
	tests := []struct {
		heading string
		want    sectionKind
	}{
		{"Common Signs and Symptoms of Vitamin D Deficiency", kindSymptoms},
		{"How Vitamin D Deficiency Is Diagnosed", kindTesting},
		{"Understanding Your Vitamin D Test Results", kindTesting},
		{"Treatment Options: Supplements, Food, and Sunlight", kindTreatment},
		{"Who Is Most at Risk of Vitamin D Deficiency", kindRisk},
		{"Zinc Absorption: What Helps and What Hinders", kindAbsorption},
		{"Preventing Vitamin D Deficiency Long Term", kindPrevention},
		{"How Long Recovery Takes and What to Expect", kindRecovery},
		{"Best Food Sources of Zinc", kindFoodSources},
		{"When to Talk to Your Doctor", kindWhenToSeeDoctor},
		{"Pricing for Real Margins", kindGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.heading, func(t *testing.T) {
			if got := classifyHeading(tt.heading); got != tt.want {
				t.Errorf("classifyHeading(%q) = %d, want %d", tt.heading, got, tt.want)
			}
		})
	}
}

func TestBankFor(t *testing.T) {
	if b := BankFor("vitamin d deficiency symptoms"); b == nil || b.Topic != "vitamin d" {
		t.Errorf("BankFor(vitamin d ...) = %+v, want the vitamin d bank", b)
	}
	if b := BankFor("zinc supplement benefits"); b == nil || b.Topic != "zinc" {
		t.Errorf("BankFor(zinc ...) = %+v, want the zinc bank", b)
	}
	if b := BankFor("dropshipping"); b != nil {
		t.Errorf("BankFor(dropshipping) = %+v, want nil", b)
	}
}

func TestSymptomSectionStructure(t *testing.T) {
	body := Section(medicalRequest(t, "Common Signs and Symptoms of Vitamin D Deficiency", 0))

	if !strings.Contains(body, "most commonly reported signs") {
		t.Error("symptom section missing its list lead-in")
	}
	if !strings.Contains(body, "- **") {
		t.Error("symptom section missing the bolded symptom list")
	}
}

func TestTestingSectionHasTable(t *testing.T) {
	body := Section(medicalRequest(t, "Understanding Your Vitamin D Test Results", 1))

	if !strings.Contains(body, "| Status | Reference range |") {
		t.Errorf("testing section missing the reference-range table:\n%s", body)
	}
	if !strings.Contains(body, "30-100 ng/mL") {
		t.Error("testing section missing the sufficient range row")
	}
}

func TestTreatmentSectionHasDosageTable(t *testing.T) {
	body := Section(medicalRequest(t, "Treatment Options: Supplements, Food, and Sunlight", 2))

	if !strings.Contains(body, "| Group | Typical dose |") {
		t.Error("treatment section missing the dosage table")
	}
	if !strings.Contains(body, "Fatty fish") {
		t.Error("treatment section missing the food list")
	}
}

func TestMedicalSectionsGetCitations(t *testing.T) {
	req := medicalRequest(t, "Common Signs and Symptoms of Vitamin D Deficiency", 0)
	body := Section(req)

	// The fallback bundle's first statistic carries "An estimated 1 billion",
	// which the citation pass must mark.
	if !strings.Contains(body, citationMark) {
		t.Errorf("medical body missing citation marker:\n%s", body)
	}
}

func TestVisualOnlyForLeadingSections(t *testing.T) {
	early := medicalRequest(t, "Common Signs and Symptoms of Vitamin D Deficiency", 0)
	early.Options.IncludeImages = true
	if !strings.Contains(Section(early), "![") {
		t.Error("leading section with images enabled should carry a visual block")
	}

	late := medicalRequest(t, "When to Talk to Your Doctor", 7)
	late.Options.IncludeImages = true
	if strings.Contains(Section(late), "![") {
		t.Error("section past the visual limit must not carry a visual block")
	}

	noImages := medicalRequest(t, "Common Signs and Symptoms of Vitamin D Deficiency", 0)
	noImages.Options.IncludeImages = false
	if strings.Contains(Section(noImages), "![") {
		t.Error("visual block rendered with images disabled")
	}
}

func TestGenericSectionStructure(t *testing.T) {
	kw := "dropshipping"
	req := Request{
		Heading:  "Pricing for Real Margins",
		Keyword:  kw,
		Variant:  "the dropshipping model",
		Bundle:   research.Fallback(kw, types.CategoryOnlineIncome),
		Category: types.CategoryOnlineIncome,
		Template: template.Select(kw, ""),
		Index:    4,
		Options:  types.GenerationOptions{TargetKeywords: kw},
	}
	body := Section(req)

	if !strings.Contains(body, "Best practices that consistently pay off") {
		t.Error("generic section missing the best-practices list")
	}
	if !strings.Contains(body, "1. ") {
		t.Error("best practices should be numbered")
	}
	// Statistic interpolation from the online-income fallback bank.
	if !strings.Contains(body, "dropshipping") {
		t.Error("generic body should mention the keyword")
	}
	if strings.Contains(body, citationMark) {
		t.Error("non-medical profile must not receive citation markers")
	}
}

func TestGenericSectionOptionalBlocks(t *testing.T) {
	kw := "content marketing"
	base := Request{
		Heading:  "Building Your Content Marketing Strategy",
		Keyword:  kw,
		Bundle:   research.Fallback(kw, types.CategoryMarketing),
		Category: types.CategoryMarketing,
		Template: template.Select(kw, ""),
	}

	plain := Section(base)
	if strings.Contains(plain, "A concrete example") || strings.Contains(plain, "Case in point") {
		t.Error("examples and case studies must be opt-in")
	}

	rich := base
	rich.Options.IncludeExamples = true
	rich.Options.UseCaseStudies = true
	body := Section(rich)
	if !strings.Contains(body, "A concrete example") {
		t.Error("IncludeExamples should add the example paragraph")
	}
	if !strings.Contains(body, "Case in point") {
		t.Error("UseCaseStudies should add the case-study block")
	}
}

func TestGenericSectionStatisticsSupplement(t *testing.T) {
	kw := "content marketing"
	base := Request{
		Heading:  "Building Your Content Marketing Strategy",
		Keyword:  kw,
		Bundle:   research.Fallback(kw, types.CategoryMarketing),
		Category: types.CategoryMarketing,
		Template: template.Select(kw, ""),
	}

	if body := Section(base); strings.Contains(body, "One more data point") {
		t.Error("statistics supplement must be opt-in")
	}

	rich := base
	rich.Options.IncludeStatistics = true
	body := Section(rich)
	if !strings.Contains(body, "One more data point worth sitting with:") {
		t.Errorf("IncludeStatistics should add the supplementary statistic:\n%s", body)
	}
	// The supplement draws the next statistic, not the opener's.
	if !strings.Contains(body, base.Bundle.Statistic(1)) {
		t.Error("supplement should carry the statistic after the opener's")
	}
}

func TestGenericSectionSpecificityParagraph(t *testing.T) {
	kw := "content marketing"
	req := Request{
		Heading:  "Measuring What Matters",
		Keyword:  kw,
		Bundle:   research.Fallback(kw, types.CategoryMarketing),
		Category: types.CategoryMarketing,
		Template: template.Select(kw, ""),
	}

	req.Options.ContentSpecificity = specificityThreshold - 1
	if strings.Contains(Section(req), "a baseline, a target, and a review date") {
		t.Error("measurement paragraph rendered below the specificity threshold")
	}

	req.Options.ContentSpecificity = specificityThreshold
	if !strings.Contains(Section(req), "a baseline, a target, and a review date") {
		t.Error("measurement paragraph missing at the specificity threshold")
	}
}

func TestSectionNeverEmpty(t *testing.T) {
	// A nonsense heading and empty bundle must still produce a body.
	req := Request{
		Heading:  "???",
		Keyword:  "anything",
		Category: types.TopicCategory("bogus"),
		Template: types.ContentTemplate{},
	}
	if body := Section(req); strings.TrimSpace(body) == "" {
		t.Error("Section returned an empty body")
	}
}

func TestSubjectPrefersVariantWhenPreventingRepetition(t *testing.T) {
	req := Request{Keyword: "zinc", Variant: "this essential mineral"}
	if got := req.subject(); got != "zinc" {
		t.Errorf("subject without prevention = %q, want keyword", got)
	}
	req.Options.PreventRepetition = true
	if got := req.subject(); got != "this essential mineral" {
		t.Errorf("subject with prevention = %q, want variant", got)
	}
}
