package domain

import "time"

// Reservation claims a court for the half-open interval [StartTime, EndTime).
// TotalPrice is frozen at creation and never recomputed from current court pricing.
type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index" json:"userId"`
	CourtID    uint      `gorm:"index" json:"courtId"`
	StartTime  time.Time `gorm:"index" json:"startTime"`
	EndTime    time.Time `gorm:"index" json:"endTime"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`

	Court *Court `json:"court,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// Overlaps reports whether two intervals collide: a.start < b.end AND a.end > b.start.
func (r Reservation) Overlaps(start, end time.Time) bool {
	return r.StartTime.Before(end) && r.EndTime.After(start)
}
