package prompts

import (
	"strings"
	"testing"
	"time"

	"northstar/models"
)

func TestBuildContextNoSurveysKeepsFixedSections(t *testing.T) {
	out := BuildContext(models.Profile{}, nil, false)

	for _, header := range []string{
		"--- USER CONTEXT ---",
		"--- 10-YEAR VISION ---",
		"--- INTERNAL OPERATING SYSTEM ---",
	} {
		if !strings.Contains(out, header) {
			t.Errorf("missing section header %q", header)
		}
	}

	// Blank fields render as empty values, never disappear.
	for _, line := range []string{
		"Role: \n",
		"Responsibilities: \n",
		"Perfect Tuesday (2035): \n",
		"The Anchor: \n",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("missing empty field line %q", line)
		}
	}

	if strings.Contains(out, "Feedback") {
		t.Errorf("no surveys given, but output has a feedback block:\n%s", out)
	}
}

func TestBuildContextNameAsymmetry(t *testing.T) {
	profile := models.Profile{CurrentRole: "Eng Manager"}
	now := time.Now()
	surveys := []models.Survey{
		{
			ID:                1,
			RespondentName:    "Alex",
			IsCompleted:       true,
			EnergyAuditAnswer: "Deep focus blocks",
			CreatedAt:         &now,
		},
	}

	named := BuildContext(profile, surveys, true)
	if !strings.Contains(named, "Role: Eng Manager\n") {
		t.Errorf("profile variant missing role line:\n%s", named)
	}
	if !strings.Contains(named, "--- Feedback from Alex ---") {
		t.Errorf("profile variant should attribute feedback to Alex:\n%s", named)
	}
	if !strings.Contains(named, "Energy Audit: Deep focus blocks\n") {
		t.Errorf("profile variant missing energy audit answer:\n%s", named)
	}
	if !strings.Contains(named, "Perfect Tuesday (2035): \n") {
		t.Errorf("profile variant should keep the blank vision line:\n%s", named)
	}

	anon := BuildContext(profile, surveys, false)
	if strings.Contains(anon, "Alex") {
		t.Errorf("chat variant must not contain respondent identity:\n%s", anon)
	}
	if !strings.Contains(anon, "--- Feedback (Anonymous) ---") {
		t.Errorf("chat variant missing anonymous feedback block:\n%s", anon)
	}
	if !strings.Contains(anon, "Energy Audit: Deep focus blocks\n") {
		t.Errorf("chat variant must still carry the answer text:\n%s", anon)
	}
}

func TestBuildContextSkipsIncompleteAndOrdersNewestFirst(t *testing.T) {
	older := time.Now().Add(-time.Hour)
	newer := time.Now()
	surveys := []models.Survey{
		{ID: 1, RespondentName: "First", IsCompleted: true, CreatedAt: &older},
		{ID: 2, RespondentName: "Draft", IsCompleted: false, CreatedAt: &newer},
		{ID: 3, RespondentName: "Second", IsCompleted: true, CreatedAt: &newer},
	}

	out := BuildContext(models.Profile{}, surveys, true)

	if strings.Contains(out, "Draft") {
		t.Errorf("incomplete survey leaked into context:\n%s", out)
	}
	first := strings.Index(out, "Feedback from Second")
	second := strings.Index(out, "Feedback from First")
	if first == -1 || second == -1 {
		t.Fatalf("expected both completed surveys in output:\n%s", out)
	}
	if first > second {
		t.Errorf("surveys not in descending creation order:\n%s", out)
	}
}

func TestBuildContextIsDeterministic(t *testing.T) {
	now := time.Now()
	surveys := []models.Survey{
		{ID: 2, RespondentName: "B", IsCompleted: true, CreatedAt: &now},
		{ID: 1, RespondentName: "A", IsCompleted: true, CreatedAt: &now},
	}
	a := BuildContext(models.Profile{}, surveys, true)
	b := BuildContext(models.Profile{}, []models.Survey{surveys[1], surveys[0]}, true)
	if a != b {
		t.Errorf("same inputs in different order produced different documents:\n%s\n---\n%s", a, b)
	}
}
