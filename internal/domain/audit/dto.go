package audit

import "time"

// Query filters the audit trail. Zero values are ignored.
type Query struct {
	UserID       *uint      `form:"user_id"`
	ResourceType string     `form:"resource_type"`
	Action       string     `form:"action"`
	StartTime    *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime      *time.Time `form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
	Page         int        `form:"page"`
	Limit        int        `form:"limit"`
}

func (q *Query) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 50
	}
	if q.Limit > 500 {
		q.Limit = 500
	}
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}
