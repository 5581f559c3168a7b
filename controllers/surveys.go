package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	dbpkg "northstar/db"
	"northstar/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InviteRequest struct {
	Name  string `json:"name" form:"name"`
	Email string `json:"email" form:"email"`
	Phone string `json:"phone" form:"phone"`
}

type SurveyAnswersRequest struct {
	RelationshipContext string `json:"relationship_context" form:"relationship_context"`
	EnergyAuditAnswer   string `json:"energy_audit_answer" form:"energy_audit_answer"`
	StressProfileAnswer string `json:"stress_profile_answer" form:"stress_profile_answer"`
	GlassCeilingAnswer  string `json:"glass_ceiling_answer" form:"glass_ceiling_answer"`
	FutureSelfAnswer    string `json:"future_self_answer" form:"future_self_answer"`
}

type ReactionRequest struct {
	Sentiment string `json:"sentiment" form:"sentiment"`
	Comment   string `json:"comment" form:"comment"`
}

// CreateInvite creates a Survey invitation and emails the respondent the
// shareable link. The email goes out in a detached goroutine; delivery
// failures are logged, never surfaced.
// POST /api/invites
func CreateInvite(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req InviteRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	survey := models.Survey{
		Token:           uuid.NewString(),
		UserID:          user.ID,
		RespondentName:  req.Name,
		RespondentEmail: req.Email,
		RespondentPhone: req.Phone,
	}
	if missing := survey.MissingFields(); missing != "" {
		RespondError(c, missing+" is required", http.StatusBadRequest)
		return
	}

	if err := db.Create(&survey).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	link := fmt.Sprintf("%s/feedback/%s", conf.BaseURL, survey.Token)
	subject := fmt.Sprintf("Feedback request from %s", user.Name)
	body := fmt.Sprintf("Hi %s,\n\n%s would value your feedback.\n\nPlease click here: %s",
		req.Name, user.Name, link)

	go func(to string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mailer.Send(ctx, subject, body, to); err != nil {
			log.Printf("invite email error (background): %v", err)
		}
	}(req.Email)

	RespondSuccess(c, gin.H{"survey": survey, "link": link})
}

// GetInvites lists the user's invitations, newest first.
// GET /api/invites
func GetInvites(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var surveys []models.Survey
	if err := db.
		Where("user_id = ?", user.ID).
		Order("created_at desc, id desc").
		Find(&surveys).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	RespondSuccess(c, gin.H{"surveys": surveys})
}

// DeleteInvite removes one of the user's own invitations.
// DELETE /api/invites/:token
func DeleteInvite(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	token, ok := ParamToken(c, "token")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var survey models.Survey
	if err := db.Where("token = ? AND user_id = ?", token, user.ID).First(&survey).Error; err != nil {
		RespondError(c, "survey not found", http.StatusNotFound)
		return
	}

	tx := db.Begin()
	if err := tx.Delete(&models.SurveyFeedback{}, "survey_id = ?", survey.ID).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Delete(&models.Survey{}, "id = ?", survey.ID).Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"status": "deleted"})
}

// GetSurveyByToken is the public entry point respondents open from their
// link. A completed survey keeps answering with the terminal state so the
// form is never shown again.
// GET /api/feedback/:token
func GetSurveyByToken(c *gin.Context) {
	token, ok := ParamToken(c, "token")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var survey models.Survey
	if err := db.Where("token = ?", token).First(&survey).Error; err != nil {
		RespondError(c, "survey not found", http.StatusNotFound)
		return
	}

	if survey.IsCompleted {
		RespondSuccess(c, gin.H{"status": "already_completed", "token": survey.Token})
		return
	}

	RespondSuccess(c, gin.H{
		"status":          "open",
		"token":           survey.Token,
		"respondent_name": survey.RespondentName,
	})
}

// SubmitSurvey stores the respondent's answers exactly once. Resubmitting
// a completed survey is not an error: it returns the terminal state and
// leaves the stored answers untouched.
// POST /api/feedback/:token
func SubmitSurvey(c *gin.Context) {
	token, ok := ParamToken(c, "token")
	if !ok {
		return
	}

	var req SurveyAnswersRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var survey models.Survey
	if err := db.Where("token = ?", token).First(&survey).Error; err != nil {
		RespondError(c, "survey not found", http.StatusNotFound)
		return
	}

	if survey.IsCompleted {
		RespondSuccess(c, gin.H{"status": "already_completed", "token": survey.Token})
		return
	}

	survey.RelationshipContext = req.RelationshipContext
	survey.EnergyAuditAnswer = req.EnergyAuditAnswer
	survey.StressProfileAnswer = req.StressProfileAnswer
	survey.GlassCeilingAnswer = req.GlassCeilingAnswer
	survey.FutureSelfAnswer = req.FutureSelfAnswer
	survey.IsCompleted = true

	if err := db.Save(&survey).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"status": "completed", "token": survey.Token})
}

// SaveReaction upserts the respondent's post-submission sentiment.
// A missing feedback row is created on first use (get-or-create), later
// calls update it in place.
// POST /api/feedback/:token/reaction
func SaveReaction(c *gin.Context) {
	token, ok := ParamToken(c, "token")
	if !ok {
		return
	}

	var req ReactionRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var survey models.Survey
	if err := db.Where("token = ?", token).First(&survey).Error; err != nil {
		RespondError(c, "survey not found", http.StatusNotFound)
		return
	}

	var feedback models.SurveyFeedback
	if err := db.
		Where(models.SurveyFeedback{SurveyID: survey.ID}).
		FirstOrCreate(&feedback).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	feedback.Sentiment = req.Sentiment
	if req.Comment != "" {
		feedback.Comment = req.Comment
	}

	if err := db.Save(&feedback).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"status": "success"})
}

// GetPublicInvite resolves a subject's public self-serve link.
// GET /api/p/:token
func GetPublicInvite(c *gin.Context) {
	token, ok := ParamToken(c, "token")
	if !ok {
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var profile models.Profile
	if err := db.Where("public_link_token = ?", token).First(&profile).Error; err != nil {
		RespondError(c, "link not found", http.StatusNotFound)
		return
	}

	var owner models.User
	if err := db.First(&owner, profile.UserID).Error; err != nil {
		RespondError(c, "link not found", http.StatusNotFound)
		return
	}

	RespondSuccess(c, gin.H{"subject_name": owner.Name})
}

// CreatePublicSurvey lets a walk-up respondent create their own survey
// from a subject's public link, then answer it through the normal
// feedback endpoint.
// POST /api/p/:token
func CreatePublicSurvey(c *gin.Context) {
	token, ok := ParamToken(c, "token")
	if !ok {
		return
	}

	var req InviteRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var profile models.Profile
	if err := db.Where("public_link_token = ?", token).First(&profile).Error; err != nil {
		RespondError(c, "link not found", http.StatusNotFound)
		return
	}

	survey := models.Survey{
		Token:           uuid.NewString(),
		UserID:          profile.UserID,
		RespondentName:  req.Name,
		RespondentEmail: req.Email,
		RespondentPhone: req.Phone,
	}
	if missing := survey.MissingFields(); missing != "" {
		RespondError(c, missing+" is required", http.StatusBadRequest)
		return
	}

	if err := db.Create(&survey).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"token": survey.Token})
}
