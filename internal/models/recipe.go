package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// UUIDSet is a JSONB-backed set of user ids (likes, bookmarks).
type UUIDSet []uuid.UUID

func (s UUIDSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	return json.Marshal(s)
}

func (s *UUIDSet) Scan(value interface{}) error {
	if value == nil {
		*s = UUIDSet{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, s)
}

// Contains reports whether id is a member of the set.
func (s UUIDSet) Contains(id uuid.UUID) bool {
	for _, member := range s {
		if member == id {
			return true
		}
	}
	return false
}

// Rating is a single user's star rating, embedded in the recipe document.
type Rating struct {
	UserID uuid.UUID `json:"user_id"`
	Value  int       `json:"value"`
}

// RatingList is the JSONB-backed ratings array. Invariant: at most one
// entry per user.
type RatingList []Rating

func (l RatingList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

func (l *RatingList) Scan(value interface{}) error {
	if value == nil {
		*l = RatingList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

type Recipe struct {
	ID           uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	DeletedAt    gorm.DeletedAt   `gorm:"index" json:"-"`
	Title        string           `gorm:"size:255;not null" json:"title"`
	Description  string           `gorm:"type:text;not null" json:"description"`
	Category     string           `gorm:"size:50;default:'main-course'" json:"category"`
	PrepTime     int              `json:"prep_time"`
	CookTime     int              `json:"cook_time"`
	Servings     int              `json:"servings"`
	Difficulty   string           `gorm:"size:20;default:'medium'" json:"difficulty"`
	ImageURL     string           `gorm:"size:255" json:"image_url"`
	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	AuthorID     uuid.UUID        `gorm:"type:varchar(36);not null" json:"author_id"`
	Author       *User            `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Likes        UUIDSet          `gorm:"type:jsonb;not null;default:'[]'" json:"likes"`
	Bookmarks    UUIDSet          `gorm:"type:jsonb;not null;default:'[]'" json:"bookmarks"`
	Ratings      RatingList       `gorm:"type:jsonb;not null;default:'[]'" json:"-"`
	Embedding    pgvector.Vector  `gorm:"type:vector(3)" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
