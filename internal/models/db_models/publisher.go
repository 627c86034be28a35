package db_models

import "github.com/google/uuid"

type Publisher struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	Name        string    `gorm:"size:255;uniqueIndex"`
	Description string

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

type Editor struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PublisherID uuid.UUID `gorm:"type:uuid;index"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Publisher Publisher `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}

type Journalist struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	PublisherID uuid.UUID `gorm:"type:uuid;index"`

	User      User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Publisher Publisher `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}
