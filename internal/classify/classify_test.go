package classify

import (
	"testing"

	"github.com/pdiddy/article-engine/pkg/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		keyword string
		want    types.TopicCategory
	}{
		{"vitamin d deficiency symptoms", types.CategoryNutrition},
		{"zinc supplement benefits", types.CategoryNutrition},
		{"hypothyroidism treatment options", types.CategoryMedical},
		{"dropshipping", types.CategoryOnlineIncome},
		{"affiliate marketing for beginners", types.CategoryOnlineIncome},
		{"content strategy for b2b", types.CategoryMarketing},
		{"startup fundraising", types.CategoryBusiness},
		{"machine learning basics", types.CategoryTechnology},
		{"best home workout routine", types.CategoryHealthFitness},
		{"how to grow tomatoes", types.CategoryGeneral},
		{"", types.CategoryGeneral},
		{"   ", types.CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			if got := Classify(tt.keyword); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.keyword, got, tt.want)
			}
		})
	}
}

// Ordering matters: nutrition cues must win over the broader medical
// vocabulary for keywords that contain both.
func TestClassifyRuleOrder(t *testing.T) {
	got := Classify("vitamin d deficiency symptoms")
	if got != types.CategoryNutrition {
		t.Errorf("nutrition rule should win over medical, got %q", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	first := Classify("dropshipping")
	second := Classify("dropshipping")
	if first != second {
		t.Errorf("Classify not idempotent: %q vs %q", first, second)
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("VITAMIN D Deficiency"); got != types.CategoryNutrition {
		t.Errorf("Classify uppercase = %q, want nutrition", got)
	}
}
