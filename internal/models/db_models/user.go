package db_models

import "strings"

type Role string

const (
	RoleReader     Role = "reader"
	RoleJournalist Role = "journalist"
	RoleEditor     Role = "editor"
	RolePublisher  Role = "publisher"
)

// User always starts off as a reader on registration and can apply for one
// of the other three roles through a RoleApplication.
type User struct {
	BaseModel
	Username     string `gorm:"uniqueIndex;size:150"`
	Email        string `gorm:"uniqueIndex"`
	FirstName    string
	LastName     string
	PasswordHash string
	Role         Role `gorm:"type:varchar(20);default:reader;index"`
	IsStaff      bool `gorm:"default:false"`
}

// FullName falls back to the username when no name parts are set.
func (u *User) FullName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full == "" {
		return u.Username
	}
	return full
}
