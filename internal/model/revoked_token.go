package model

import "time"

// RevokedToken is a denylist entry for a logged-out bearer token. Rows are
// append-only: a token present here stays invalid regardless of its embedded
// expiry, and nothing ever deletes them.
type RevokedToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"uniqueIndex;size:500;not null"`
	RevokedOn time.Time `json:"revoked_on" gorm:"autoCreateTime;not null"`
}
