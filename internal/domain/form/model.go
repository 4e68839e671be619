package form

import (
	"time"

	"gorm.io/datatypes"
)

const StatusPending = "Pending"

const (
	RecipientSpecific = "specific"
	RecipientGeneral  = "general"
)

// GeneralPool is the pool every user can pick forms from.
const GeneralPool = "general"

type Form struct {
	ID               uint           `json:"id" gorm:"primaryKey"`
	UserID           uint           `json:"user_id" gorm:"index;not null"`
	FormType         string         `json:"form_type" gorm:"size:50;index;not null"`
	FormData         datatypes.JSON `json:"form_data"`
	Notes            string         `json:"notes" gorm:"type:text"`
	Status           string         `json:"status" gorm:"size:50;index;default:'Pending'"`
	ForDate          time.Time      `json:"for_date"`
	RecipientType    string         `json:"recipient_type" gorm:"size:20;not null"`
	RecipientID      *uint          `json:"recipient_id" gorm:"index"`
	GeneralRecipient string         `json:"general_recipient" gorm:"size:50;index"`
	AlertID          *uint          `json:"alert_id"`
	SignatureURL     string         `json:"signature_url"`
	FollowedUpAt     *time.Time     `json:"followed_up_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	History          []History      `json:"history,omitempty" gorm:"foreignKey:FormID"`
}

// History is an append-only record of a status or recipient change.
type History struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	FormID      uint      `json:"form_id" gorm:"index;not null"`
	Status      string    `json:"status" gorm:"size:50;not null"`
	ActorID     uint      `json:"actor_id" gorm:"index"`
	FromUserID  *uint     `json:"from_user_id"`
	ToUserID    *uint     `json:"to_user_id"`
	ToRecipient string    `json:"to_recipient" gorm:"size:50"`
	CreatedAt   time.Time `json:"created_at"`
}

func (History) TableName() string {
	return "form_history"
}

// IsSpecific reports whether the form is routed to one user.
func (f *Form) IsSpecific() bool {
	return f.RecipientType == RecipientSpecific && f.RecipientID != nil
}

// RoutedTo reports whether a user with the given id and role is the
// current recipient, either directly or through a pool.
func (f *Form) RoutedTo(userID uint, role string) bool {
	if f.IsSpecific() {
		return *f.RecipientID == userID
	}
	return f.GeneralRecipient == role || f.GeneralRecipient == GeneralPool
}
