package db_models

import "github.com/google/uuid"

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// RoleApplication is a reader's request to become journalist, editor or
// publisher. One pending application per user is enforced at the service
// layer, inside the same transaction as the insert.
type RoleApplication struct {
	BaseModel
	UserID      uuid.UUID         `gorm:"type:uuid;index"`
	AppliedRole Role              `gorm:"type:varchar(20)"`
	Motivation  string            `gorm:"type:text"`
	Status      ApplicationStatus `gorm:"type:varchar(20);default:pending;index"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
