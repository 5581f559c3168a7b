package router

import (
	"log"

	"northstar/controllers"
	"northstar/middleware"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public survey routes keyed
// by unguessable tokens, authenticated subject routes, and admin routes.
func Initialize(r *gin.Engine) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/users", Logger(), controllers.CreateUser)
	api.POST("/login", Logger(), controllers.Login)

	// Respondent-facing routes. The survey token is the only access
	// control here.
	api.GET("/feedback/:token", Logger(), controllers.GetSurveyByToken)
	api.POST("/feedback/:token", Logger(), controllers.SubmitSurvey)
	api.POST("/feedback/:token/reaction", Logger(), controllers.SaveReaction)
	api.POST("/feedback/:token/alternative", Logger(), controllers.AlternativeQuestion)

	// Public self-serve invite links
	api.GET("/p/:token", Logger(), controllers.GetPublicInvite)
	api.POST("/p/:token", Logger(), controllers.CreatePublicSurvey)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())

	auth.GET("/me", Logger(), controllers.Me)
	auth.GET("/dashboard", Logger(), controllers.Dashboard)
	auth.PUT("/profile/onboarding", Logger(), controllers.SaveOnboarding)

	// Invitations
	auth.GET("/invites", Logger(), controllers.GetInvites)
	auth.POST("/invites", Logger(), controllers.CreateInvite)
	auth.DELETE("/invites/:token", Logger(), controllers.DeleteInvite)

	// Analysis & chat
	auth.POST("/profile/analyze", Logger(), controllers.StartAnalysis)
	auth.GET("/profile/analysis", Logger(), controllers.GetAnalysisStatus)
	auth.POST("/profile/chat", Logger(), controllers.Chat)

	// Admin routes
	admin := auth.Group("")
	admin.Use(controllers.AdminRequired())
	admin.GET("/stats/feedback", Logger(), controllers.FeedbackStats)

	log.Printf("Routes initialized")
}
