package models

import "time"

// PlaythroughStatus is where a user stands with a game.
type PlaythroughStatus string

const (
	StatusPlanned  PlaythroughStatus = "planned"
	StatusPlaying  PlaythroughStatus = "playing"
	StatusFinished PlaythroughStatus = "finished"
	StatusDropped  PlaythroughStatus = "dropped"
)

// Valid reports whether s is a known status.
func (s PlaythroughStatus) Valid() bool {
	switch s {
	case StatusPlanned, StatusPlaying, StatusFinished, StatusDropped:
		return true
	}
	return false
}

// Playthrough is the user-specific progress on a game.
type Playthrough struct {
	Status               PlaythroughStatus `gorm:"size:20;not null"`
	CompletionPercent    int
	AchievementsUnlocked int
	AchievementsTotal    int
	HoursPlayed          float64
	Notes                string
}

// CollectionEntry is one game in a user's collection. Display fields are
// copied from the catalog record when the entry is added.
// The primary key is a composite of (UserID, GameID).
type CollectionEntry struct {
	UserID           uint   `gorm:"primaryKey"`
	GameID           int64  `gorm:"primaryKey;autoIncrement:false"`
	Title            string `gorm:"size:255;not null"`
	Name             string `gorm:"size:255;not null"`
	Summary          string
	FirstReleaseDate *int64
	CoverURL         string `gorm:"size:512"`
	CoverImageID     string `gorm:"size:64"`
	Rating           *float64
	Playthrough      Playthrough `gorm:"embedded;embeddedPrefix:playthrough_"`
	AddedAt          time.Time   `gorm:"autoCreateTime"`
	UpdatedAt        time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
