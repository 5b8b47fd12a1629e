package model

import "time"

// Dataset is the flat record set loaded from the store. A graph snapshot is
// built wholesale from one Dataset; the records are never mutated afterward.
type Dataset struct {
	Vessels  []*Vessel
	Edges    []*Edge
	Aliases  []*Alias
	Regions  []*Region
	Notes    []*Note
	LoadedAt time.Time
}
