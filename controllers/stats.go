package controllers

import (
	"net/http"

	dbpkg "northstar/db"
	"northstar/models"

	"github.com/gin-gonic/gin"
)

// FeedbackStats aggregates respondent sentiment across all surveys.
// GET /api/stats/feedback (admin)
func FeedbackStats(c *gin.Context) {
	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var total int64
	if err := db.Model(&models.SurveyFeedback{}).Count(&total).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	type sentimentCount struct {
		Sentiment string `json:"sentiment"`
		Count     int64  `json:"count"`
	}
	var counts []sentimentCount
	if err := db.Model(&models.SurveyFeedback{}).
		Select("sentiment, count(*) as count").
		Group("sentiment").
		Scan(&counts).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	var recent []models.SurveyFeedback
	if err := db.Order("created_at desc, id desc").Limit(50).Find(&recent).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{
		"total":      total,
		"sentiments": counts,
		"recent":     recent,
	})
}
