package db_models

import "github.com/google/uuid"

// JournalistSubscription is a reader's opt-in to one journalist. The pair is
// unique; re-subscribing reactivates the existing row instead of creating a
// second one.
type JournalistSubscription struct {
	BaseModel
	ReaderID     uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reader_journalist"`
	JournalistID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reader_journalist"`
	IsActive     bool      `gorm:"default:true;index"`

	Reader     User       `gorm:"foreignKey:ReaderID;constraint:OnDelete:CASCADE"`
	Journalist Journalist `gorm:"foreignKey:JournalistID;constraint:OnDelete:CASCADE"`
}

type PublisherSubscription struct {
	BaseModel
	ReaderID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reader_publisher"`
	PublisherID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_reader_publisher"`
	IsActive    bool      `gorm:"default:true;index"`

	Reader    User      `gorm:"foreignKey:ReaderID;constraint:OnDelete:CASCADE"`
	Publisher Publisher `gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}
