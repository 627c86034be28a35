package db_models

import "github.com/google/uuid"

type ArticleStatus string

const (
	ArticlePending  ArticleStatus = "pending"
	ArticleApproved ArticleStatus = "approved"
	ArticleRejected ArticleStatus = "rejected"
)

// Article carries a review status; only approved articles reach readers.
type Article struct {
	BaseModel
	Title        string        `gorm:"size:255"`
	Content      string        `gorm:"type:text"`
	JournalistID uuid.UUID     `gorm:"type:uuid;index"`
	PublisherID  uuid.UUID     `gorm:"type:uuid;index"`
	Status       ArticleStatus `gorm:"type:varchar(20);default:pending;index"`

	Journalist Journalist `gorm:"foreignKey:JournalistID;constraint:OnDelete:CASCADE"`
	Publisher  Publisher  `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}

// Newsletter has no review gate; it is visible as soon as it is created.
type Newsletter struct {
	BaseModel
	Title        string    `gorm:"size:255"`
	Content      string    `gorm:"type:text"`
	JournalistID uuid.UUID `gorm:"type:uuid;index"`
	PublisherID  uuid.UUID `gorm:"type:uuid;index"`

	Journalist Journalist `gorm:"foreignKey:JournalistID;constraint:OnDelete:CASCADE"`
	Publisher  Publisher  `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}
