// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package synthesize

import (
	"fmt"
	"strings"
)

// Specialized generators for recognized medical topics. Each receives the
// matched fact bank and returns a markdown body without its heading; the
// assembler owns headings and anchors.

func symptomsSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s rarely announces itself loudly. Most people notice a cluster of vague complaints that are easy to attribute to stress or a busy schedule, which is exactly why the problem so often goes unrecognized.\n\n", sentenceStart(req.subject()))

	if stat := req.Bundle.Statistic(req.Index); stat != "" {
		fmt.Fprintf(&b, "%s\n\n", stat)
	}

	b.WriteString("The most commonly reported signs include:\n\n")
	for _, s := range bank.Symptoms {
		fmt.Fprintf(&b, "- **%s**\n", s)
	}

	fmt.Fprintf(&b, "\nNo single item on this list confirms anything on its own. What matters clinically is the pattern: several of these appearing together, persisting for weeks, and lacking another obvious explanation. If that describes your situation, a simple blood test can settle the question — guesswork cannot.\n")

	return b.String()
}

func testingSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Testing for %s is straightforward: a standard blood draw your primary care provider can order, often covered when symptoms justify it. Results usually come back within a few days.\n\n", bank.DisplayName)

	if len(bank.Testing) > 0 {
		b.WriteString("Here is how clinicians generally interpret the numbers:\n\n")
		b.WriteString("| Status | Reference range | What it means |\n")
		b.WriteString("|--------|----------------|---------------|\n")
		for _, row := range bank.Testing {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", row.Level, row.Range, row.Meaning)
		}
		b.WriteString("\n")
	}

	b.WriteString("Reference ranges vary slightly between laboratories, so read your own report's ranges rather than comparing raw numbers across labs. Bring the actual results to your appointment; the trend across repeat tests is more informative than any single value.\n")

	return b.String()
}

func treatmentSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Correcting %s is usually a matter of consistency rather than heroics. Treatment plans combine supplementation, dietary change, and — where relevant — lifestyle adjustments, with dosing matched to how low your levels actually are.\n\n", bank.DisplayName)

	if len(bank.Dosage) > 0 {
		b.WriteString("| Group | Typical dose | Notes |\n")
		b.WriteString("|-------|-------------|-------|\n")
		for _, row := range bank.Dosage {
			fmt.Fprintf(&b, "| %s | %s | %s |\n", row.Group, row.Dose, row.Notes)
		}
		b.WriteString("\n")
	}

	if len(bank.Foods) > 0 {
		b.WriteString("Food sources worth building into your routine:\n\n")
		for _, f := range bank.Foods {
			fmt.Fprintf(&b, "- %s\n", f)
		}
		b.WriteString("\n")
	}

	b.WriteString("Do not self-prescribe high doses indefinitely. More is not better past the point of sufficiency, and the upper-limit rows above exist for a reason. Agree on a dose with your clinician, hold it steadily, and retest rather than escalate.\n")

	return b.String()
}

func riskSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Some people can ignore %s for years without consequence; others are quietly running a meaningful deficit. The difference usually comes down to membership in one of a few well-documented risk groups.\n\n", req.subject())

	for _, g := range bank.RiskGroups {
		fmt.Fprintf(&b, "- %s\n", g)
	}

	b.WriteString("\nBelonging to one of these groups does not guarantee a problem, but it shifts the odds enough that proactive testing is reasonable even without symptoms. Belonging to two or more makes it worth raising at your next routine appointment.\n")

	return b.String()
}

func absorptionSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Intake is only half the story with %s — what your body actually absorbs is what counts. A supplement taken under the wrong conditions can deliver a fraction of its label dose.\n\n", bank.DisplayName)

	var helps, hinders []string
	for _, a := range bank.Absorption {
		switch {
		case strings.HasPrefix(a, "+"):
			helps = append(helps, strings.TrimSpace(strings.TrimPrefix(a, "+")))
		case strings.HasPrefix(a, "-"):
			hinders = append(hinders, strings.TrimSpace(strings.TrimPrefix(a, "-")))
		}
	}

	if len(helps) > 0 {
		b.WriteString("**What improves absorption:**\n\n")
		for _, h := range helps {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}
	if len(hinders) > 0 {
		b.WriteString("**What works against it:**\n\n")
		for _, h := range hinders {
			fmt.Fprintf(&b, "- %s\n", h)
		}
		b.WriteString("\n")
	}

	b.WriteString("Small habit changes here are free and compound quietly. Fixing the conditions around a dose is often worth more than raising the dose itself.\n")

	return b.String()
}

func preventionSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Once corrected, %s has an unhelpful habit of returning when the routine that fixed it lapses. Prevention is less about vigilance and more about building the fix into ordinary life so it no longer requires willpower.\n\n", req.subject())

	b.WriteString("A maintenance routine that works for most people:\n\n")
	b.WriteString("1. Keep a maintenance dose going year-round rather than stopping when you feel better.\n")
	if len(bank.Foods) > 0 {
		fmt.Fprintf(&b, "2. Anchor two or three reliable food sources in your weekly meals — %s is a good start.\n", strings.ToLower(firstClause(bank.Foods[0])))
	} else {
		b.WriteString("2. Anchor two or three reliable food sources in your weekly meals.\n")
	}
	b.WriteString("3. Retest annually, or seasonally if your levels have dipped before.\n")
	b.WriteString("4. Revisit your dose after major changes — new medications, significant weight change, or a move to a different climate.\n")

	if bank.RecoveryNote != "" {
		fmt.Fprintf(&b, "\n%s\n", bank.RecoveryNote)
	}

	return b.String()
}

func causesSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Understanding why %s develops makes the fix considerably less mysterious. The usual suspects:\n\n", req.subject())

	for i, c := range bank.Causes {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c)
	}

	b.WriteString("\nMost cases trace back to a combination of two or three of these rather than a single dramatic cause, which is why partial fixes so often produce partial results.\n")

	return b.String()
}

func foodSourcesSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Food alone rarely corrects an established deficiency quickly, but it is what keeps levels stable once you get there. The best dietary sources of %s:\n\n", bank.DisplayName)

	for _, f := range bank.Foods {
		fmt.Fprintf(&b, "- %s\n", f)
	}

	b.WriteString("\nAim for variety rather than leaning on a single item. Two or three of these sources appearing in a normal week does more for long-term stability than occasional large servings.\n")

	return b.String()
}

func recoverySection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "The honest answer on timelines: slower than people hope, faster than they fear. ")
	if bank.RecoveryNote != "" {
		fmt.Fprintf(&b, "%s\n\n", bank.RecoveryNote)
	} else {
		b.WriteString("Most people see measurable improvement within two to three months of consistent treatment.\n\n")
	}

	b.WriteString("What to expect along the way:\n\n")
	b.WriteString("- **Weeks 1-4:** blood levels begin to climb; most people feel no different yet.\n")
	b.WriteString("- **Weeks 4-8:** energy and mood improvements typically appear first.\n")
	b.WriteString("- **Weeks 8-12:** levels approach the target range; retesting is usually scheduled here.\n")
	b.WriteString("- **Beyond:** a lower maintenance dose preserves the gains.\n\n")

	b.WriteString("The most common failure mode is stopping at the first sign of improvement. Treat the retest, not the relief, as the finish line.\n")

	return b.String()
}

func whenToSeeDoctorSection(req Request, bank *FactBank) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Self-education is useful; self-diagnosis is not. See a clinician about %s promptly if any of the following apply:\n\n", req.subject())

	b.WriteString("- Symptoms have persisted for more than a few weeks despite reasonable self-care\n")
	b.WriteString("- You belong to one or more of the high-risk groups described earlier\n")
	b.WriteString("- You are pregnant, breastfeeding, or managing a chronic condition\n")
	b.WriteString("- You are already taking medications that could interact with supplementation\n")
	b.WriteString("- Symptoms are worsening rather than holding steady\n\n")

	fmt.Fprintf(&b, "A short appointment and a routine blood panel can replace months of uncertainty. Clinicians see %s regularly; there is nothing unusual about raising it.\n", bank.DisplayName)

	return b.String()
}

// sentenceStart uppercases the first letter of a phrase for use at the
// start of a sentence.
func sentenceStart(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// firstClause returns the text before the first parenthetical or comma,
// for embedding list items mid-sentence.
func firstClause(s string) string {
	if i := strings.IndexAny(s, "(,"); i > 0 {
		return strings.TrimSpace(s[:i])
	}
	return s
}
