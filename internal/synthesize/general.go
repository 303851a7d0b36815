// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import "github.com/pdiddy/article-engine/pkg/types"

// generalContent is the declared fallback content set for keywords no
// other category claims.
var generalContent = categoryContent{
	framework: "Making real progress with %s comes down to a simple loop: learn a little, apply it immediately, and review what happened before learning more. Most people invert this — accumulating information indefinitely while waiting to feel ready. The loop works because application exposes which knowledge actually matters, and review converts experience into judgment.",
	practices: []string{
		"Define what success looks like before you start, in one written sentence.",
		"Learn from primary sources where possible; summaries lose the caveats.",
		"Apply new knowledge within 48 hours or expect to lose it.",
		"Keep notes on what you tried and what happened, however brief.",
		"Find one person further along than you and one at your level.",
		"Review monthly and adjust the approach, not just the effort.",
	},
	example:   "A complete newcomer to %s gave themselves thirty days: one hour of study, one small applied experiment, and five minutes of notes per day. By day thirty they had a working grasp that casual reading had failed to produce in a year.",
	caseStudy: "Asked how he mastered an unfamiliar field in a year, a career changer's answer was unglamorous: a notebook, a weekly experiment, and a standing Sunday review. Nothing in the method was clever; everything in it was repeated.",
}

// medicalContent covers medical-category headings that the specialized
// generators do not claim.
var medicalContent = categoryContent{
	framework: "Navigating %s well means holding two ideas at once: taking symptoms seriously enough to act, and calmly enough to act in order. The order is consistent — document what you are experiencing, get objectively tested, treat according to results, and retest to confirm. Skipping steps in either direction, toward panic or toward denial, is where most avoidable trouble starts.",
	practices: []string{
		"Keep a dated symptom log; patterns beat recollection in an appointment.",
		"Bring written questions to medical visits and write down the answers.",
		"Ask for copies of all test results and keep them in one place.",
		"Change one treatment variable at a time where clinically possible.",
		"Seek a second opinion for any major or surprising diagnosis.",
		"Never stop a prescribed medication without discussing it first.",
	},
	example:   "A patient dealing with %s arrived at their appointment with a three-week symptom log and a list of current supplements. The visit that usually produces a shrug produced a targeted test order instead.",
	caseStudy: "One patient spent two years cycling through internet remedies; a second spent two weeks documenting symptoms and one morning getting tested. The second had a diagnosis and a plan before the first had finished arguing with a forum.",
}

// categoryContents is the dispatch table for the generic generator.
var categoryContents = map[types.TopicCategory]categoryContent{
	types.CategoryMarketing:     marketingContent,
	types.CategoryBusiness:      businessContent,
	types.CategoryOnlineIncome:  onlineIncomeContent,
	types.CategoryTechnology:    technologyContent,
	types.CategoryHealthFitness: healthFitnessContent,
	types.CategoryNutrition:     nutritionContent,
	types.CategoryMedical:       medicalContent,
	types.CategoryGeneral:       generalContent,
}
