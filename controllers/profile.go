package controllers

import (
	"net/http"

	dbpkg "northstar/db"
	"northstar/models"

	"github.com/gin-gonic/gin"
)

type OnboardingRequest struct {
	CurrentRole          string `json:"current_role" form:"current_role"`
	Responsibilities     string `json:"responsibilities" form:"responsibilities"`
	FamilyContext        string `json:"family_context" form:"family_context"`
	CoreValues           string `json:"core_values" form:"core_values"`
	VisionPerfectTuesday string `json:"vision_perfect_tuesday" form:"vision_perfect_tuesday"`
	VisionToastTest      string `json:"vision_toast_test" form:"vision_toast_test"`
	VisionAntiVision     string `json:"vision_anti_vision" form:"vision_anti_vision"`
	StressResponse       string `json:"stress_response" form:"stress_response"`
	InternalAnchor       string `json:"internal_anchor" form:"internal_anchor"`
}

// Dashboard returns the profile plus the user's invitations, newest first.
// The boundary uses onboarding_completed to decide whether to redirect to
// the onboarding flow.
// GET /api/dashboard
func Dashboard(c *gin.Context) {
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

	profile, err := dbpkg.EnsureProfile(db, user.ID)
	if err != nil {
		RespondError(c, err.Error(), http.StatusInternalServerError)
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

	RespondSuccess(c, gin.H{"profile": profile, "surveys": surveys})
}

// SaveOnboarding persists the subject's self-context, vision and internal
// operating system answers and marks onboarding as completed.
// PUT /api/profile/onboarding
func SaveOnboarding(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req OnboardingRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
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

	profile.CurrentRole = req.CurrentRole
	profile.Responsibilities = req.Responsibilities
	profile.FamilyContext = req.FamilyContext
	profile.CoreValues = req.CoreValues
	profile.VisionPerfectTuesday = req.VisionPerfectTuesday
	profile.VisionToastTest = req.VisionToastTest
	profile.VisionAntiVision = req.VisionAntiVision
	profile.StressResponse = req.StressResponse
	profile.InternalAnchor = req.InternalAnchor
	profile.OnboardingCompleted = true

	if err := db.Save(&profile).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	RespondSuccess(c, gin.H{"profile": profile})
}
