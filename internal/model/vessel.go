package model

import "time"

// VesselType classifies a vessel by its role in circulation.
type VesselType string

const (
	TypeArtery    VesselType = "ARTERY"
	TypeVein      VesselType = "VEIN"
	TypeCapillary VesselType = "CAPILLARY"
)

// String returns the string representation of the vessel type.
func (t VesselType) String() string {
	return string(t)
}

// IsValid checks whether the vessel type is a known value.
func (t VesselType) IsValid() bool {
	switch t {
	case TypeArtery, TypeVein, TypeCapillary:
		return true
	}
	return false
}

// Oxygenation describes the oxygen content of blood carried by a vessel.
// Note that the mapping to vessel type is not one-to-one: the pulmonary
// arteries carry deoxygenated blood.
type Oxygenation string

const (
	Oxygenated   Oxygenation = "OXYGENATED"
	Deoxygenated Oxygenation = "DEOXYGENATED"
	Mixed        Oxygenation = "MIXED"
)

// String returns the string representation of the oxygenation level.
func (o Oxygenation) String() string {
	return string(o)
}

// IsValid checks whether the oxygenation is a known value.
func (o Oxygenation) IsValid() bool {
	switch o {
	case Oxygenated, Deoxygenated, Mixed:
		return true
	}
	return false
}

// Vessel is the core node record of the vascular graph.
type Vessel struct {
	ID            int64       `json:"id"`
	Name          string      `json:"name"`
	Type          VesselType  `json:"type"`
	Oxygenation   Oxygenation `json:"oxygenation"`
	DiameterMinMM *float64    `json:"diameter_min_mm,omitempty"`
	DiameterMaxMM *float64    `json:"diameter_max_mm,omitempty"`
	Description   string      `json:"description,omitempty"`
	ClinicalNotes string      `json:"clinical_notes,omitempty"`
	RegionID      *int64      `json:"region_id,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`

	// Relational data -- populated by queries, not stored in the vessels table.
	Aliases []string `json:"aliases,omitempty"`
	Notes   []*Note  `json:"notes,omitempty"`
}

// VesselSummary is the lightweight shape used in search results and listings.
type VesselSummary struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Type        VesselType  `json:"type"`
	Oxygenation Oxygenation `json:"oxygenation"`
	Region      string      `json:"region,omitempty"`
	Aliases     []string    `json:"aliases"`
}

// VesselNeighbor identifies an adjacent vessel in neighbor listings.
type VesselNeighbor struct {
	ID   int64      `json:"id"`
	Name string     `json:"name"`
	Type VesselType `json:"type"`
}

// VesselDetail is the full shape returned for a single-vessel lookup,
// including the resolved region and ordered neighbor listings.
type VesselDetail struct {
	ID                  int64             `json:"id"`
	Name                string            `json:"name"`
	Type                VesselType        `json:"type"`
	Oxygenation         Oxygenation       `json:"oxygenation"`
	DiameterMinMM       *float64          `json:"diameter_min_mm,omitempty"`
	DiameterMaxMM       *float64          `json:"diameter_max_mm,omitempty"`
	Description         string            `json:"description,omitempty"`
	ClinicalNotes       string            `json:"clinical_notes,omitempty"`
	Region              *Region           `json:"region,omitempty"`
	Aliases             []string          `json:"aliases"`
	Notes               []*Note           `json:"notes,omitempty"`
	UpstreamNeighbors   []*VesselNeighbor `json:"upstream_neighbors"`
	DownstreamNeighbors []*VesselNeighbor `json:"downstream_neighbors"`
}
