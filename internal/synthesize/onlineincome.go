// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

// onlineIncomeContent feeds the generic generator for online-income keywords.
var onlineIncomeContent = categoryContent{
	framework: "The realistic path through %s has three stages, and skipping one is the most common way people fail. Validation comes first: prove that someone will pay before building anything elaborate. Systemization comes second: turn the thing that worked once into a repeatable weekly process. Scale comes last, and only once unit economics are positive — scaling a loss just makes it bigger faster.",
	practices: []string{
		"Set an honest monthly income target and work backwards to the daily activity it implies.",
		"Track every expense from day one; most beginner 'profit' disappears under proper accounting.",
		"Reinvest the first months of earnings instead of withdrawing them.",
		"Pick one model and give it six months before considering a switch.",
		"Treat your first ten customers as research interviews, not just revenue.",
		"Build an email list from the start; owned audience outlasts every platform change.",
	},
	example:   "Someone starting %s with $500 and ten hours a week spent the first month validating demand with a landing page, the second fulfilling orders manually, and only automated in month three once margins were proven. Slow by internet standards, durable by real ones.",
	caseStudy: "A teacher building a side income stuck to one model for eight months, shipping something small every week. Month one earned nothing. Month eight cleared $1,900. The people who started alongside her and switched models quarterly earned, on average, nothing.",
}
