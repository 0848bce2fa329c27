package models

import "time"

// UserSettings holds per-user preferences. The catalog reads the filter
// fields to seed defaults for browse and search.
type UserSettings struct {
	UserID     uint `gorm:"primaryKey;autoIncrement:false"`
	HideMature bool
	MinRating  float64
	Tags       []string `gorm:"serializer:json"`
	Theme      string   `gorm:"size:50"`
	Font       string   `gorm:"size:50"`
	UpdatedAt  time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// DefaultSettings returns the settings of a user who never saved any.
func DefaultSettings(userID uint) UserSettings {
	return UserSettings{
		UserID:     userID,
		HideMature: true,
		Tags:       []string{},
		Theme:      "system",
		Font:       "default",
	}
}
