package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment belongs to a recipe and optionally replies to a top-level
// comment. The model is two-level: a reply's parent is always top-level.
type Comment struct {
	ID        uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	RecipeID  uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"recipe_id"`
	AuthorID  uuid.UUID  `gorm:"type:varchar(36);not null" json:"author_id"`
	Author    *User      `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	ParentID  *uuid.UUID `gorm:"type:varchar(36);index" json:"parent_id"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
