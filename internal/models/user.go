package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `gorm:"index" json:"-"`
	Name         string          `gorm:"not null" json:"name"`
	Email        string          `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string          `gorm:"not null" json:"-"`
	Bio          string          `gorm:"type:text" json:"bio"`
	Location     string          `gorm:"size:100" json:"location"`
	AvatarURL    string          `gorm:"size:255" json:"avatar_url"`
	Settings     PrivacySettings `gorm:"embedded;embeddedPrefix:setting_" json:"settings"`
}

// PrivacySettings controls which profile fields are visible to other users.
type PrivacySettings struct {
	ShowEmail      bool   `gorm:"default:false" json:"show_email"`
	ShowBio        bool   `gorm:"default:true" json:"show_bio"`
	ShowLocation   bool   `gorm:"default:true" json:"show_location"`
	ProfilePrivacy string `gorm:"size:20;default:'public'" json:"profile_privacy"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Follow is a directed follower -> followee relationship between two users.
type Follow struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt  time.Time `json:"created_at"`
	FollowerID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_follow_pair" json:"followee_id"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
