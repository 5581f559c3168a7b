package controllers

import (
	"net/http"
	"strings"

	dbpkg "northstar/db"
	"northstar/models"
	"northstar/prompts"

	"github.com/gin-gonic/gin"
)

type AlternativeQuestionRequest struct {
	Category     string `json:"category"`
	Relationship string `json:"relationship"`
}

// AlternativeQuestion rewrites one survey question into an easier variant
// for a struggling respondent. Single synchronous call on the fast model
// tier; nothing is persisted.
// POST /api/feedback/:token/alternative
func AlternativeQuestion(c *gin.Context) {
	token, ok := ParamToken(c, "token")
	if !ok {
		return
	}

	var req AlternativeQuestionRequest
	if err := c.BindJSON(&req); err != nil {
		RespondError(c, "invalid json", http.StatusBadRequest)
		return
	}
	if !models.IsQuestionCategory(req.Category) {
		RespondError(c, "unknown question category", http.StatusBadRequest)
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

	if llm == nil || !llm.HasKey() {
		RespondError(c, "configuration error: no AI API key configured", http.StatusServiceUnavailable)
		return
	}

	prompt, ok := prompts.AlternativeQuestionPrompt(req.Category, req.Relationship)
	if !ok {
		RespondError(c, "unknown question category", http.StatusBadRequest)
		return
	}

	question, err := llm.Generate(c.Request.Context(), conf.AI.ChatModel, prompt)
	if err != nil {
		RespondError(c, err.Error(), http.StatusBadGateway)
		return
	}

	RespondSuccess(c, gin.H{"question": strings.TrimSpace(question)})
}
