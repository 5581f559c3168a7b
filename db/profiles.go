package db

import (
	"northstar/models"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
)

// EnsureProfile returns the user's profile, creating it if missing.
// Profiles are normally created together with the user, but older accounts
// and the analysis path must not depend on that.
func EnsureProfile(database *gorm.DB, userID int64) (models.Profile, error) {
	var profile models.Profile
	err := database.
		Where(models.Profile{UserID: userID}).
		Attrs(models.Profile{PublicLinkToken: uuid.NewString()}).
		FirstOrCreate(&profile).Error
	return profile, err
}
