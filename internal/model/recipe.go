package model

import "time"

// Recipe belongs to exactly one category and, transitively, to that category's
// owner. Titles are stored lower-cased and are unique within the category.
type Recipe struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Title            string    `json:"title" gorm:"size:255;not null;uniqueIndex:idx_recipes_category_title"`
	Description      string    `json:"description" gorm:"type:text"`
	CategoryIdentity uint      `json:"category_identity" gorm:"not null;uniqueIndex:idx_recipes_category_title;index"`
	DateCreated      time.Time `json:"date_created" gorm:"autoCreateTime"`
	DateModified     time.Time `json:"date_modified" gorm:"autoUpdateTime"`
}
