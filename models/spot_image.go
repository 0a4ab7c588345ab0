package models

import "time"

// SpotImage is one photo attached to a spot. At most one image per spot
// carries the preview flag; the flag swap happens at write time in the
// image handlers.
type SpotImage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SpotID    uint      `gorm:"index;not null" json:"spotId"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Preview   bool      `gorm:"default:false" json:"preview"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
