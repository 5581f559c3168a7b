package prompts

import (
	"fmt"
	"sort"
	"strings"

	"northstar/models"
)

// BuildContext projects a profile plus its completed surveys into the
// single text document fed to the model. The shape is constant: all three
// subject sections always appear, blank fields render as empty values, and
// survey blocks come in descending creation order.
//
// includeNames controls the one deliberate asymmetry: profile synthesis may
// attribute feedback to a named respondent, the chat path must not.
func BuildContext(profile models.Profile, surveys []models.Survey, includeNames bool) string {
	var b strings.Builder

	b.WriteString("\n--- USER CONTEXT ---\n")
	fmt.Fprintf(&b, "Role: %s\n", profile.CurrentRole)
	fmt.Fprintf(&b, "Responsibilities: %s\n", profile.Responsibilities)
	fmt.Fprintf(&b, "Family: %s\n", profile.FamilyContext)
	fmt.Fprintf(&b, "Values: %s\n", profile.CoreValues)

	b.WriteString("\n--- 10-YEAR VISION ---\n")
	fmt.Fprintf(&b, "Perfect Tuesday (2035): %s\n", profile.VisionPerfectTuesday)
	fmt.Fprintf(&b, "Toast Test: %s\n", profile.VisionToastTest)
	fmt.Fprintf(&b, "Anti-Vision: %s\n", profile.VisionAntiVision)

	b.WriteString("\n--- INTERNAL OPERATING SYSTEM ---\n")
	fmt.Fprintf(&b, "Stress Response: %s\n", profile.StressResponse)
	fmt.Fprintf(&b, "The Anchor: %s\n", profile.InternalAnchor)

	ordered := make([]models.Survey, len(surveys))
	copy(ordered, surveys)
	sort.SliceStable(ordered, func(i, j int) bool {
		ti, tj := ordered[i].CreatedAt, ordered[j].CreatedAt
		if ti != nil && tj != nil && !ti.Equal(*tj) {
			return ti.After(*tj)
		}
		return ordered[i].ID > ordered[j].ID
	})

	for _, s := range ordered {
		if !s.IsCompleted {
			continue
		}
		if includeNames {
			fmt.Fprintf(&b, "\n--- Feedback from %s ---\n", s.RespondentName)
		} else {
			b.WriteString("\n--- Feedback (Anonymous) ---\n")
		}
		fmt.Fprintf(&b, "Context: %s\n", s.RelationshipContext)
		fmt.Fprintf(&b, "Energy Audit: %s\n", s.EnergyAuditAnswer)
		fmt.Fprintf(&b, "Stress Profile: %s\n", s.StressProfileAnswer)
		fmt.Fprintf(&b, "Glass Ceiling: %s\n", s.GlassCeilingAnswer)
		fmt.Fprintf(&b, "Future Self: %s\n", s.FutureSelfAnswer)
	}

	return b.String()
}
