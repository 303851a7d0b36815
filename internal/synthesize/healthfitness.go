// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

// healthFitnessContent feeds the generic generator for health-and-fitness
// keywords that have no dedicated medical fact bank.
var healthFitnessContent = categoryContent{
	framework: "Sustainable progress with %s rests on three principles. Consistency beats intensity: a modest routine you keep for a year outperforms an ambitious one you abandon in March. Progressive overload applies beyond the gym: whatever you are doing, it should get slightly harder over time. And recovery is part of the program, not a break from it — sleep and rest days are where adaptation actually happens.",
	practices: []string{
		"Start at a level you could sustain on your worst week, not your best.",
		"Schedule sessions like appointments; decide the time, not just the intention.",
		"Track one simple metric so progress is visible when motivation is not.",
		"Increase difficulty by no more than 10% per week.",
		"Protect sleep as seriously as training time.",
		"Plan for missed days in advance; the plan that survives interruption wins.",
	},
	example:   "A beginner approaching %s committed to three short sessions a week at an intentionally easy level. Six months later the habit was automatic and the intensity had doubled without ever feeling like a leap.",
	caseStudy: "Two friends started the same program. One trained six days a week and quit in week five. The other trained three days a week and was still going at the one-year mark, comfortably past where the ambitious plan would have led.",
}
