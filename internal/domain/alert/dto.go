package alert

import "time"

// Request describes one fan-out. Target is a role name, the general pool,
// or a decimal user id; UserIDs overrides it when non-empty.
type Request struct {
	Kind          Kind
	Message       string
	RelatedFormID *uint
	ActorID       uint
	Target        string
	UserIDs       []uint
	Status        string
	Role          string
}

// Event is the payload pushed to WebSocket clients.
type Event struct {
	Event     string    `json:"event"`
	AlertID   uint      `json:"alert_id"`
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	FormID    *uint     `json:"form_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,max=50" example:"Resolved"`
}
