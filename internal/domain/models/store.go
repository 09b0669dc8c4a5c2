package models

import "time"

// Store is a physical (or online) shop where prices are observed.
// Duplicate name+location pairs are permitted.
//
// swagger:model Store
type Store struct {
	ID        int64     `json:"id" example:"7"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name" example:"Market A"`
	Location  string    `json:"location,omitempty" example:"Downtown"`
}
