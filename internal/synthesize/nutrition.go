// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

// nutritionContent feeds the generic generator for nutrition keywords
// whose headings fall outside the specialized medical generators, or whose
// topic has no dedicated fact bank.
var nutritionContent = categoryContent{
	framework: "A sensible approach to %s starts from food, adds targeted supplementation only where diet falls short, and verifies with testing rather than guessing. Whole foods bring cofactors that isolated supplements lack; supplements bring precision that diets cannot guarantee. The two are complements, not competitors, and testing is the referee between them.",
	practices: []string{
		"Audit your actual intake for a week before changing anything.",
		"Prioritize food sources first; use supplements to close specific, verified gaps.",
		"Introduce one change at a time so effects can be attributed.",
		"Buy supplements tested by a third party; label accuracy varies widely.",
		"Retest after 8-12 weeks rather than assuming a protocol worked.",
		"Discuss supplementation with your clinician if you take any regular medication.",
	},
	example:   "Someone concerned about %s logged meals for a week, found the gap was real but modest, and closed it with two food swaps plus a conservative supplement — verified by a follow-up test instead of a feeling.",
	caseStudy: "A patient who stacked six supplements on intuition replaced the pile with a blood panel and a two-item protocol. Levels normalized in ten weeks and the monthly supplement bill fell by 70%.",
}
