package user

import "time"

const (
	RoleStaff      = "Staff"
	RoleSupervisor = "Supervisor"
	RoleManagement = "Management"
	RoleSuperAdmin = "Super-Admin"
)

// Roles lists every assignable role in ascending privilege.
var Roles = []string{RoleStaff, RoleSupervisor, RoleManagement, RoleSuperAdmin}

func IsValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"size:50;uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"`
	Role        string    `json:"role" gorm:"size:20;index;not null;default:'Staff'"`
	Email       string    `json:"email" gorm:"size:255"`
	PhoneNumber string    `json:"phone_number" gorm:"size:30"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MovedForm records a form the user handed over to another recipient.
type MovedForm struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"index;not null"`
	FormID        uint      `json:"form_id" gorm:"index;not null"`
	RecipientType string    `json:"recipient_type" gorm:"size:20"`
	Recipient     string    `json:"recipient" gorm:"size:50"`
	Status        string    `json:"status" gorm:"size:50"`
	MovedAt       time.Time `json:"moved_at"`
}
