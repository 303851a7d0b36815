// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

// businessContent feeds the generic generator for business keywords.
var businessContent = categoryContent{
	framework: "Treat %s as a system with three moving parts. Strategy sets the direction: a small number of explicit bets about where value will come from. Execution converts those bets into weekly commitments owned by named people. Feedback closes the loop: a recurring review where results change the plan instead of decorating a slide. Organizations that struggle here almost always have one of the three parts missing, not all of them.",
	practices: []string{
		"Put decisions in writing, including the options you rejected and why.",
		"Limit active priorities to three; a longer list is a wish, not a plan.",
		"Assign every initiative a single owner, never a committee.",
		"Review leading indicators weekly and lagging ones monthly.",
		"Kill stalled projects explicitly instead of letting them fade.",
		"Talk to customers directly at least once a week, regardless of role.",
	},
	example:   "A ten-person services firm applying this to %s replaced its sprawling annual plan with three quarterly bets and a Friday scoreboard review. Within two quarters, on-time delivery went from the exception to the norm.",
	caseStudy: "A founder running two stalled product lines chose one, wrote a one-page strategy, and reviewed it against real numbers every Monday for a year. The discarded line was not missed, and the surviving one tripled.",
}
