// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

// technologyContent feeds the generic generator for technology keywords.
var technologyContent = categoryContent{
	framework: "Learning %s effectively follows a consistent pattern. Start with a minimal working example and get it running before reading theory — the feedback loop matters more than the syllabus. Then change one thing at a time and observe what breaks; this builds the mental model documentation cannot. Finally, build something slightly beyond your ability and finish it, because finishing is where the durable skills live.",
	practices: []string{
		"Keep a running log of errors you hit and how you resolved them.",
		"Read official documentation before community tutorials, not after.",
		"Automate anything you have done manually three times.",
		"Prefer boring, proven tools for anything you need to rely on.",
		"Version-control everything from the first day, including experiments.",
		"Schedule time to pay down technical debt before it schedules you.",
	},
	example:   "A team adopting %s ran a two-week spike on a throwaway branch before committing to it, captured every rough edge in a shared doc, and made the adoption decision from evidence instead of enthusiasm.",
	caseStudy: "An engineer who felt stuck spent thirty minutes a day for three months rebuilding familiar tools from scratch. The exercise looked inefficient and was anything but: their debugging speed on production issues roughly doubled.",
}
