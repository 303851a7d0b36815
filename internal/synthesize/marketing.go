// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

// marketingContent feeds the generic generator for marketing keywords.
var marketingContent = categoryContent{
	framework: "A workable framework for %s has three layers. First, positioning: be precise about who you serve and what changes for them. Second, distribution: pick the two channels where that audience already spends attention and go deep instead of wide. Third, measurement: define one primary metric per channel before spending a dollar, so results can be attributed rather than argued about.",
	practices: []string{
		"Write down your target audience before choosing tactics; tactics chosen first almost always drift.",
		"Commit to a channel for at least 90 days before judging it.",
		"Track cost per acquired customer, not vanity metrics like impressions.",
		"Repurpose every substantial piece of content into at least three formats.",
		"Review what worked monthly and cut the bottom 20% of activities without sentiment.",
		"Keep a swipe file of competitor messaging and revisit it quarterly.",
	},
	example:   "A small B2B software firm applying this to %s cut its channel list from six to two, rebuilt its landing page around one customer problem, and saw qualified demo requests double in a quarter without increasing spend.",
	caseStudy: "A regional e-commerce brand spent a year spreading budget across every channel with flat results. After consolidating into search and email only, revenue per marketing dollar rose 2.4x in six months. The tactics were unremarkable; the focus was not.",
}
