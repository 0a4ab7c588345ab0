package models

import "time"

// Review is a guest's rating of a spot. Stars stay in [0,5]; deleting a
// user cascades to their reviews, deleting a spot does not.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SpotID    uint      `gorm:"index;not null" json:"spotId"`
	UserID    uint      `gorm:"index;not null;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"userId"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	Review    string    `gorm:"not null" json:"review"`
	Stars     int       `gorm:"not null;check:stars >= 0 AND stars <= 5" json:"stars"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
