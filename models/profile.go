package models

import (
	"strings"
	"time"
)

/************************************************
/**** MARK: ANALYSIS STATES ****/
/************************************************/

// AI_SUMMARY_ANALYZING is the sentinel stored in AISummary while a
// generation is in flight. It must never collide with real generated text
// or with the empty string.
const AI_SUMMARY_ANALYZING = "__ANALYZING__"

// AI_SUMMARY_FAILED_PREFIX marks a stored generation failure. The text
// after the prefix is the error description shown to the user.
const AI_SUMMARY_FAILED_PREFIX = "Analysis failed: "

const ANALYSIS_STATE_EMPTY = "empty"
const ANALYSIS_STATE_ANALYZING = "analyzing"
const ANALYSIS_STATE_COMPLETE = "complete"
const ANALYSIS_STATE_FAILED = "failed"

// Profile holds the subject's self-reported context and the AI summary.
// One per User, created together with the user and never deleted on its own.
type Profile struct {
	ID     int64 `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	UserID int64 `gorm:"not null;unique_index" json:"user_id"`

	// AISummary holds one of: empty, the analyzing sentinel, the final
	// generated text, or a failure message.
	AISummary           string `gorm:"type:text" json:"ai_summary"`
	OnboardingCompleted bool   `gorm:"not null;default:false" json:"onboarding_completed"`

	// Self context
	CurrentRole      string `gorm:"type:text" json:"current_role" form:"current_role"`
	Responsibilities string `gorm:"type:text" json:"responsibilities" form:"responsibilities"`
	FamilyContext    string `gorm:"type:text" json:"family_context" form:"family_context"`
	CoreValues       string `gorm:"type:text" json:"core_values" form:"core_values"`

	// 10-year vision
	VisionPerfectTuesday string `gorm:"type:text" json:"vision_perfect_tuesday" form:"vision_perfect_tuesday"`
	VisionToastTest      string `gorm:"type:text" json:"vision_toast_test" form:"vision_toast_test"`
	VisionAntiVision     string `gorm:"type:text" json:"vision_anti_vision" form:"vision_anti_vision"`

	// Internal operating system
	StressResponse string `gorm:"type:text" json:"stress_response" form:"stress_response"`
	InternalAnchor string `gorm:"type:text" json:"internal_anchor" form:"internal_anchor"`

	// PublicLinkToken lets walk-up respondents request their own survey.
	PublicLinkToken string `gorm:"not null;unique_index" json:"public_link_token"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

// AnalysisState classifies AISummary into one of the four analysis states.
// The detail is the generated text (complete) or the error description
// (failed); empty otherwise.
func (p Profile) AnalysisState() (state string, detail string) {
	switch {
	case p.AISummary == "":
		return ANALYSIS_STATE_EMPTY, ""
	case p.AISummary == AI_SUMMARY_ANALYZING:
		return ANALYSIS_STATE_ANALYZING, ""
	case strings.HasPrefix(p.AISummary, AI_SUMMARY_FAILED_PREFIX):
		return ANALYSIS_STATE_FAILED, strings.TrimPrefix(p.AISummary, AI_SUMMARY_FAILED_PREFIX)
	default:
		return ANALYSIS_STATE_COMPLETE, p.AISummary
	}
}
