package models

import "time"

type Spot struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	OwnerID     uint        `gorm:"index;not null" json:"ownerId"`
	Address     string      `gorm:"not null" json:"address"`
	City        string      `gorm:"index;not null" json:"city"`
	State       string      `gorm:"not null" json:"state"`
	Country     string      `gorm:"not null" json:"country"`
	Lat         float64     `json:"lat"`
	Lng         float64     `json:"lng"`
	Name        string      `gorm:"size:50;not null" json:"name"`
	Description string      `gorm:"type:text;not null" json:"description"`
	Price       float64     `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt   time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	SpotImages  []SpotImage `gorm:"foreignKey:SpotID;constraint:OnDelete:CASCADE" json:"-"`
	Reviews     []Review    `gorm:"foreignKey:SpotID" json:"-"`
}
