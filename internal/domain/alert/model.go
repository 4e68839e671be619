package alert

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ChannelInApp = "in-app"
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

type Kind string

const (
	KindFormReceived  Kind = "form_received"
	KindStatusUpdated Kind = "status_updated"
	KindFormMoved     Kind = "form_moved"
	KindFollowUp      Kind = "follow_up"
	KindRoleUpdated   Kind = "role_updated"
	KindGeneric       Kind = "generic"
)

type Alert struct {
	ID            uint                        `json:"id" gorm:"primaryKey"`
	Message       string                      `json:"message" gorm:"type:text;not null"`
	Kind          Kind                        `json:"kind" gorm:"size:30"`
	Role          string                      `json:"role" gorm:"size:20"`
	UserID        uint                        `json:"user_id" gorm:"index;not null"`
	Categories    datatypes.JSONSlice[string] `json:"categories"`
	RelatedFormID *uint                       `json:"related_form_id" gorm:"index"`
	Read          bool                        `json:"read" gorm:"not null;default:false"`
	CreatedAt     time.Time                   `json:"created_at" gorm:"index"`
}
