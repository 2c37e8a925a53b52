package model

import (
	"database/sql/driver"
	"encoding/json"
	"strings"
	"time"

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

// Scan implements the sql.Scanner interface. Malformed payloads fall back
// to a single raw-string element rather than failing the row scan.
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

	if err := json.Unmarshal(bytes, a); err != nil {
		raw := strings.TrimSpace(string(bytes))
		if raw == "" {
			*a = JSONBStringArray{}
		} else {
			*a = JSONBStringArray{raw}
		}
	}
	return nil
}

// Recipe is a stored recipe row. The boolean and meal-role columns are the
// structured attributes the search engine applies as hard filters.
type Recipe struct {
	ID               int64            `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
	DeletedAt        gorm.DeletedAt   `gorm:"index" json:"-"`
	Title            string           `gorm:"size:255;not null" json:"title"`
	Description      string           `gorm:"type:text" json:"description"`
	Ingredients      JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions     JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	PrepMinutes      int              `json:"prep_minutes"`
	CookMinutes      int              `json:"cook_minutes"`
	TotalMinutes     int              `gorm:"index" json:"total_minutes"`
	Servings         int              `json:"servings"`
	Source           string           `gorm:"size:255" json:"source"`
	MealRole         string           `gorm:"size:50;index" json:"meal_role"`
	IsEasy           bool             `json:"is_easy"`
	IsOnePot         bool             `json:"is_one_pot"`
	KidFriendly      bool             `json:"kid_friendly"`
	LeftoverFriendly bool             `json:"leftover_friendly"`
}
