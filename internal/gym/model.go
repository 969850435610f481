package gym

import "time"

// DefaultCapacity applies to gyms without a configured per-slot capacity.
const DefaultCapacity = 10

type Gym struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Location    string    `db:"location" json:"location"`
	OwnerName   string    `db:"owner_name" json:"owner_name"`
	OwnerEmail  string    `db:"owner_email" json:"owner_email"`
	Capacity    *int      `db:"capacity" json:"capacity,omitempty"`
	TotalVisits int       `db:"total_visits" json:"total_visits"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// EffectiveCapacity returns the configured slot capacity, or the default
// when the gym has none set.
func (g *Gym) EffectiveCapacity(fallback int) int {
	if g.Capacity != nil && *g.Capacity > 0 {
		return *g.Capacity
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultCapacity
}

// SlotAvailability is the derived occupancy of one (gym, date, time slot).
type SlotAvailability struct {
	GymID     int    `json:"gym_id"`
	Date      string `json:"date"`
	TimeSlot  string `json:"time_slot"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
	Available int    `json:"available"`
	IsFull    bool   `json:"is_full"`
}
