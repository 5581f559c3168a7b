package models

import "time"

/************************************************
/**** MARK: QUESTION CATEGORIES ****/
/************************************************/
const QUESTION_ENERGY_AUDIT = "energy_audit"
const QUESTION_STRESS_PROFILE = "stress_profile"
const QUESTION_GLASS_CEILING = "glass_ceiling"
const QUESTION_FUTURE_SELF = "future_self"

// Survey is one feedback invitation sent to one respondent. The Token is
// the only access control on the public submission endpoint, so it has to
// be unguessable (a random UUID).
type Survey struct {
	ID     int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Token  string `gorm:"not null;unique_index" json:"token"`
	UserID int64  `gorm:"not null;index" json:"user_id"`

	RespondentName  string `gorm:"not null" json:"respondent_name" form:"respondent_name"`
	RespondentEmail string `gorm:"not null" json:"respondent_email" form:"respondent_email"`
	RespondentPhone string `gorm:"default:''" json:"respondent_phone" form:"respondent_phone"`

	// Answers are immutable once IsCompleted is true.
	IsCompleted bool `gorm:"not null;default:false;index" json:"is_completed"`

	RelationshipContext string `gorm:"type:text" json:"relationship_context" form:"relationship_context"`
	EnergyAuditAnswer   string `gorm:"type:text" json:"energy_audit_answer" form:"energy_audit_answer"`
	StressProfileAnswer string `gorm:"type:text" json:"stress_profile_answer" form:"stress_profile_answer"`
	GlassCeilingAnswer  string `gorm:"type:text" json:"glass_ceiling_answer" form:"glass_ceiling_answer"`
	FutureSelfAnswer    string `gorm:"type:text" json:"future_self_answer" form:"future_self_answer"`

	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

func (survey Survey) MissingFields() string {
	if survey.RespondentName == "" {
		return "respondent_name"
	} else if survey.RespondentEmail == "" {
		return "respondent_email"
	}
	return ""
}

// IsQuestionCategory reports whether s is one of the four survey question
// categories.
func IsQuestionCategory(s string) bool {
	switch s {
	case QUESTION_ENERGY_AUDIT, QUESTION_STRESS_PROFILE, QUESTION_GLASS_CEILING, QUESTION_FUTURE_SELF:
		return true
	}
	return false
}
