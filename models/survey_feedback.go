package models

import "time"

/************************************************
/**** MARK: SENTIMENTS ****/
/************************************************/
const SENTIMENT_POSITIVE = "positive"
const SENTIMENT_NEUTRAL = "neutral"
const SENTIMENT_NEGATIVE = "negative"

// SurveyFeedback captures a respondent's post-submission reaction.
// At most one per Survey; created lazily on the first reaction and
// updated in place afterwards.
type SurveyFeedback struct {
	ID        int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	SurveyID  int64      `gorm:"not null;unique_index" json:"survey_id"`
	Sentiment string     `gorm:"default:''" json:"sentiment" form:"sentiment"`
	Comment   string     `gorm:"type:text" json:"comment" form:"comment"`
	CreatedAt *time.Time `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}
