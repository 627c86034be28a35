package db_models

import "gorm.io/datatypes"

const (
	NotifyRoleApproved     = "role_approved"
	NotifyRoleRejected     = "role_rejected"
	NotifyArticleStatus    = "article_status"
	NotifyArticleFanout    = "article_fanout"
	NotifyNewsletterFanout = "newsletter_fanout"
	NotifyNewsletterOwner  = "newsletter_confirmation"
	NotifyPasswordReset    = "password_reset"
)

// NotificationLog records every outbound message attempt. Delivery failures
// never fail the triggering request; this table is the operator surface for
// spotting them.
type NotificationLog struct {
	BaseModel
	Kind      string `gorm:"size:50;index"`
	Recipient string `gorm:"index"`
	Subject   string
	Payload   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	Delivered bool           `gorm:"default:false"`
}
