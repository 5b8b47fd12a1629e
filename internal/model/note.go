package model

import "time"

// Note is a clinical or educational annotation attached to a vessel.
type Note struct {
	ID        int64     `json:"id"`
	VesselID  int64     `json:"vessel_id"`
	Title     string    `json:"title"`
	Markdown  string    `json:"markdown"`
	CreatedAt time.Time `json:"created_at"`
}

// Alias is a secondary name bound to exactly one vessel. Aliases are not
// unique across vessels.
type Alias struct {
	ID       int64  `json:"id"`
	VesselID int64  `json:"vessel_id"`
	Alias    string `json:"alias"`
}
