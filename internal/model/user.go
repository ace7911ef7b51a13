// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
	StatusArchived  UserStatus = "archived"
)

// User is the employee-directory record consulted by the catalog deletion
// guard. The directory itself (onboarding, authentication, profile
// management) belongs to another system; only the fields the guard and audit
// stamping need are mapped here.
type User struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email      string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName  string     `gorm:"type:text;not null" json:"first_name"`
	LastName   string     `gorm:"type:text" json:"last_name"`
	Department string     `gorm:"type:text;index" json:"department"`
	Role       string     `gorm:"type:text;index" json:"role"`
	Status     UserStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
