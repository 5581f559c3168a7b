package prompts

import (
	"fmt"

	"northstar/models"
)

const profileTemplate = `Role: You are an expert developmental psychologist and executive coach, fluent in the Enneagram, Internal Family Systems (IFS), The 6 Types of Working Genius, and Vertical Leadership Development.

Input Data: You will receive 360-feedback from peers AND the user's own "10-Year Vision" from their onboarding.

FEEDBACK DATA:
%s

Objective: Synthesize the inputs into a high-impact "User Manual" for the subject. Do not summarize; interpret the data to reveal their operating system. Use "Radical Candor" - be direct, kind, and psychologically deep.

Output Format:

Section 1: Who You Are (The Operating System)
* Core Motivation: Identify their likely Enneagram Type based on their stressors and desires.
* Zone of Genius: Contrast where they have *competence* vs. where they actually get *energy* (Working Genius).

Section 2: The Gap (Intent vs. Impact)
* The Protectors (IFS): explicitly name the "Characters" that show up when they are stressed (e.g., "The Steamroller," "The Ghost," "The Martyr") and explain the specific cost of these behaviors on their relationships.
* The Blind Spot: Highlight the specific behavior (Vertical Development edge) that threatens to sabotage their 10-Year Vision.

Section 3: The North Star
* Compare their *Self-Reported Vision* with *Peer Feedback*. Are they aligned? Is the user under-selling or over-selling themselves?
* Paint a vivid picture of them operating at the "Self-Transforming" level of maturity.

Section 4: The Manual (The Path Forward)
* The Daily Practice: One specific micro-habit to integrate their Shadow/Protectors (e.g., "The 5-Minute Pause," "Solicited Criticism").
* The Media Stack:
    * Read: 1 specific book (with a 1-sentence "why").
    * Watch: 1 movie or show that mirrors their specific character arc.
    * Listen: 1 specific podcast episode.
* The Experience:
    * General: A specific type of activity to break their pattern (e.g., Improv, Jiu-Jitsu, Silent Retreat).
    * Local: If the user's location is known, suggest a specific local venue/vendor. If unknown, suggest how to find the best local option.`

const chatTemplate = `You are a confidential executive coach. You have access to the following 360-degree feedback about the user.

FEEDBACK DATA:
%s

USER QUESTION: "%s"

CRITICAL RULES:
1. **CONFIDENTIALITY**: NEVER reveal the identity of the person who gave specific feedback. Use phrases like "One colleague mentioned..." or "Feedback suggests...".
2. **SYNTHESIS**: Aggregate the insights. Don't just quote.
3. **TONE**: Professional, encouraging, and growth-oriented.

Answer the user's question based on the data.`

const alternativeQuestionTemplate = `You are helping a respondent answer a 360-degree feedback survey about a person they know.

Question topic: %s
The respondent's relationship to the subject: %s

The respondent found the original question hard to answer. Write exactly one alternative question on the same topic that is easier and more concrete, phrased for this relationship. Reply with the question only, on a single line, with no preamble.`

// questionContexts maps each survey question category to one descriptive
// sentence used when asking the model for an easier variant.
var questionContexts = map[string]string{
	models.QUESTION_ENERGY_AUDIT:   "The Energy Audit: when have you seen this person most energized and alive at work?",
	models.QUESTION_STRESS_PROFILE: "The Stress Profile: how does this person behave when they are under pressure?",
	models.QUESTION_GLASS_CEILING:  "The Glass Ceiling: what do you believe is holding this person back from their next level?",
	models.QUESTION_FUTURE_SELF:    "The Future Self: what could you imagine this person doing ten years from now?",
}

// ProfilePrompt renders the one-shot profile-synthesis prompt. The
// aggregated context is embedded verbatim, unbounded.
func ProfilePrompt(context string) string {
	return fmt.Sprintf(profileTemplate, context)
}

// ChatPrompt renders the conversational prompt. Context and question are
// embedded verbatim, unbounded.
func ChatPrompt(context, question string) string {
	return fmt.Sprintf(chatTemplate, context, question)
}

// AlternativeQuestionPrompt renders the rewrite-this-question prompt.
// ok is false when the category is not one of the survey questions.
func AlternativeQuestionPrompt(category, relationship string) (prompt string, ok bool) {
	desc, ok := questionContexts[category]
	if !ok {
		return "", false
	}
	return fmt.Sprintf(alternativeQuestionTemplate, desc, relationship), true
}
