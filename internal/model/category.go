package model

import "time"

// Category is a named recipe grouping owned by exactly one user. Names are
// stored title-cased and are unique per owner, enforced by the composite index.
type Category struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"size:255;not null;uniqueIndex:idx_categories_owner_name"`
	CreatedBy    uint      `json:"created_by" gorm:"not null;uniqueIndex:idx_categories_owner_name;index"`
	DateCreated  time.Time `json:"date_created" gorm:"autoCreateTime"`
	DateModified time.Time `json:"date_modified" gorm:"autoUpdateTime"`

	// Relations
	Recipes []Recipe `json:"-" gorm:"foreignKey:CategoryIdentity;constraint:OnDelete:CASCADE"`
}
