package controllers

import (
	"errors"
	"net/http"

	dbpkg "northstar/db"
	"northstar/models"
	"northstar/prompts"
	"northstar/tools"
	"northstar/workers"

	"github.com/gin-gonic/gin"
)

type ChatRequest struct {
	Message string `json:"message"`
}

// StartAnalysis triggers background profile generation. The analyzing
// sentinel is persisted before this handler returns, so a poll right after
// the 202 already sees "analyzing". Missing API key is a configuration
// error and the job never starts.
// POST /api/profile/analyze
func StartAnalysis(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	err := runner.Start(user.ID)
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
	case errors.Is(err, tools.ErrNoAPIKey):
		RespondError(c, "configuration error: no AI API key configured", http.StatusServiceUnavailable)
	case errors.Is(err, workers.ErrAlreadyRunning):
		RespondError(c, "analysis already running", http.StatusConflict)
	default:
		RespondError(c, err.Error(), http.StatusInternalServerError)
	}
}

// GetAnalysisStatus is the read-only projection the UI polls.
// GET /api/profile/analysis
func GetAnalysisStatus(c *gin.Context) {
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

	var profile models.Profile
	if err := db.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		RespondSuccess(c, gin.H{"status": models.ANALYSIS_STATE_EMPTY})
		return
	}

	state, detail := profile.AnalysisState()
	switch state {
	case models.ANALYSIS_STATE_COMPLETE:
		RespondSuccess(c, gin.H{"status": state, "summary": detail})
	case models.ANALYSIS_STATE_FAILED:
		RespondSuccess(c, gin.H{"status": state, "error": detail})
	default:
		RespondSuccess(c, gin.H{"status": state})
	}
}

// Chat answers a question over the anonymized aggregate. Synchronous: the
// reply (or the error) goes straight back to the caller, nothing is
// persisted.
// POST /api/profile/chat
func Chat(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req ChatRequest
	if err := c.BindJSON(&req); err != nil {
		RespondError(c, "invalid json", http.StatusBadRequest)
		return
	}
	if req.Message == "" {
		RespondError(c, "message is required", http.StatusBadRequest)
		return
	}

	if llm == nil || !llm.HasKey() {
		RespondError(c, "configuration error: no AI API key configured", http.StatusServiceUnavailable)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	profile, err := dbpkg.EnsureProfile(db, user.ID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
		return
	}

	var surveys []models.Survey
	if err := db.
		Where("user_id = ? AND is_completed = ?", user.ID, true).
		Order("created_at desc, id desc").
		Find(&surveys).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	// Chat context stays anonymized: respondent names never reach this prompt.
	contextDoc := prompts.BuildContext(profile, surveys, false)
	prompt := prompts.ChatPrompt(contextDoc, req.Message)

	reply, err := llm.Generate(c.Request.Context(), conf.AI.ChatModel, prompt)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadGateway)
		return
	}

	RespondSuccess(c, gin.H{"reply": reply})
}
