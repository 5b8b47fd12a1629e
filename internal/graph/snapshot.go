package graph

import (
	"sort"
	"strings"
	"time"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// Neighbor is one entry in a vessel's adjacency list. Order within a list is
// edge insertion order, which makes every traversal deterministic.
type Neighbor struct {
	VesselID int64
	Label    string
}

// nameEntry maps one case-folded name or alias string to its owning vessel.
type nameEntry struct {
	folded   string
	vesselID int64
}

// Snapshot is an immutable view of one loaded dataset: all records plus the
// adjacency and name indices derived from them. A snapshot is built once and
// then shared read-only across concurrent queries; on reload a whole new
// snapshot replaces it.
type Snapshot struct {
	vessels  map[int64]*model.Vessel
	order    []int64 // vessel ids ascending
	edges    []*model.Edge
	outgoing map[int64][]Neighbor
	incoming map[int64][]Neighbor
	regions  map[int64]*model.Region
	forest   []*model.RegionNode
	notes    map[int64][]*model.Note
	names    []nameEntry
	loadedAt time.Time
}

// NewSnapshot builds a snapshot from the flat dataset. It validates every
// record and returns an *IntegrityError on duplicate vessel ids, edges that
// reference unknown vessels or repeat an ordered (parent, child) pair, or a
// cycle in the region parent links. A failed build leaves no partial state.
func NewSnapshot(ds *model.Dataset) (*Snapshot, error) {
	s := &Snapshot{
		vessels:  make(map[int64]*model.Vessel, len(ds.Vessels)),
		edges:    ds.Edges,
		outgoing: make(map[int64][]Neighbor),
		incoming: make(map[int64][]Neighbor),
		regions:  make(map[int64]*model.Region, len(ds.Regions)),
		notes:    make(map[int64][]*model.Note),
		loadedAt: ds.LoadedAt,
	}
	if s.loadedAt.IsZero() {
		s.loadedAt = time.Now().UTC()
	}

	for _, v := range ds.Vessels {
		if _, dup := s.vessels[v.ID]; dup {
			return nil, integrityf("duplicate vessel id %d", v.ID)
		}
		if err := model.ValidateVessel(v); err != nil {
			return nil, &IntegrityError{Reason: "invalid vessel " + v.Name, Err: err}
		}
		s.vessels[v.ID] = v
		s.order = append(s.order, v.ID)
	}
	sort.Slice(s.order, func(i, j int) bool { return s.order[i] < s.order[j] })

	// Aliases bind to exactly one vessel each; attach them in record order.
	for _, a := range ds.Aliases {
		v, ok := s.vessels[a.VesselID]
		if !ok {
			return nil, integrityf("alias %q references unknown vessel %d", a.Alias, a.VesselID)
		}
		if strings.TrimSpace(a.Alias) == "" {
			return nil, integrityf("empty alias on vessel %q", v.Name)
		}
		v.Aliases = append(v.Aliases, a.Alias)
	}

	seenPairs := make(map[[2]int64]bool, len(ds.Edges))
	for _, e := range ds.Edges {
		if err := model.ValidateEdge(e); err != nil {
			return nil, &IntegrityError{Reason: "invalid edge", Err: err}
		}
		if _, ok := s.vessels[e.ParentID]; !ok {
			return nil, integrityf("edge references unknown parent vessel %d", e.ParentID)
		}
		if _, ok := s.vessels[e.ChildID]; !ok {
			return nil, integrityf("edge references unknown child vessel %d", e.ChildID)
		}
		pair := [2]int64{e.ParentID, e.ChildID}
		if seenPairs[pair] {
			return nil, integrityf("duplicate edge from vessel %d to vessel %d", e.ParentID, e.ChildID)
		}
		seenPairs[pair] = true

		s.outgoing[e.ParentID] = append(s.outgoing[e.ParentID], Neighbor{VesselID: e.ChildID, Label: e.Label})
		s.incoming[e.ChildID] = append(s.incoming[e.ChildID], Neighbor{VesselID: e.ParentID, Label: e.Label})
	}

	for _, r := range ds.Regions {
		s.regions[r.ID] = r
	}
	forest, err := BuildRegionForest(ds.Regions)
	if err != nil {
		return nil, err
	}
	s.forest = forest

	for _, r := range ds.Vessels {
		if r.RegionID != nil {
			if _, ok := s.regions[*r.RegionID]; !ok {
				return nil, integrityf("vessel %q references unknown region %d", r.Name, *r.RegionID)
			}
		}
	}

	for _, n := range ds.Notes {
		v, ok := s.vessels[n.VesselID]
		if !ok {
			return nil, integrityf("note %q references unknown vessel %d", n.Title, n.VesselID)
		}
		s.notes[n.VesselID] = append(s.notes[n.VesselID], n)
		v.Notes = s.notes[n.VesselID]
	}

	// Case-folded name index over primary names and every alias.
	for _, id := range s.order {
		v := s.vessels[id]
		s.names = append(s.names, nameEntry{folded: strings.ToLower(v.Name), vesselID: id})
		for _, a := range v.Aliases {
			s.names = append(s.names, nameEntry{folded: strings.ToLower(a), vesselID: id})
		}
	}

	return s, nil
}

// Vessel returns the vessel with the given id, or a *NotFoundError.
func (s *Snapshot) Vessel(id int64) (*model.Vessel, error) {
	v, ok := s.vessels[id]
	if !ok {
		return nil, &NotFoundError{Kind: "vessel", ID: id}
	}
	return v, nil
}

// Vessels returns all vessels ordered by id ascending.
func (s *Snapshot) Vessels() []*model.Vessel {
	out := make([]*model.Vessel, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.vessels[id])
	}
	return out
}

// Outgoing returns the downstream neighbors of a vessel in edge insertion order.
func (s *Snapshot) Outgoing(id int64) []Neighbor {
	return s.outgoing[id]
}

// Incoming returns the upstream neighbors of a vessel in edge insertion order.
func (s *Snapshot) Incoming(id int64) []Neighbor {
	return s.incoming[id]
}

// Edges returns all edges in insertion order.
func (s *Snapshot) Edges() []*model.Edge {
	return s.edges
}

// Region returns the region with the given id, or a *NotFoundError.
func (s *Snapshot) Region(id int64) (*model.Region, error) {
	r, ok := s.regions[id]
	if !ok {
		return nil, &NotFoundError{Kind: "region", ID: id}
	}
	return r, nil
}

// RegionForest returns the root regions with recursively populated children.
// The forest is assembled once at snapshot build time.
func (s *Snapshot) RegionForest() []*model.RegionNode {
	return s.forest
}

// LoadedAt reports when the underlying dataset was loaded.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Detail assembles the full single-vessel view: attributes, resolved region,
// aliases, notes, and ordered upstream/downstream neighbor summaries.
func (s *Snapshot) Detail(id int64) (*model.VesselDetail, error) {
	v, err := s.Vessel(id)
	if err != nil {
		return nil, err
	}

	d := &model.VesselDetail{
		ID:                  v.ID,
		Name:                v.Name,
		Type:                v.Type,
		Oxygenation:         v.Oxygenation,
		DiameterMinMM:       v.DiameterMinMM,
		DiameterMaxMM:       v.DiameterMaxMM,
		Description:         v.Description,
		ClinicalNotes:       v.ClinicalNotes,
		Aliases:             append([]string{}, v.Aliases...),
		Notes:               s.notes[id],
		UpstreamNeighbors:   s.neighborSummaries(s.incoming[id]),
		DownstreamNeighbors: s.neighborSummaries(s.outgoing[id]),
	}
	if v.RegionID != nil {
		d.Region = s.regions[*v.RegionID]
	}
	return d, nil
}

func (s *Snapshot) neighborSummaries(ns []Neighbor) []*model.VesselNeighbor {
	out := make([]*model.VesselNeighbor, 0, len(ns))
	for _, n := range ns {
		v := s.vessels[n.VesselID]
		out = append(out, &model.VesselNeighbor{ID: v.ID, Name: v.Name, Type: v.Type})
	}
	return out
}

// Stats aggregates vessel counts by type and oxygenation.
func (s *Snapshot) Stats() *model.GraphStats {
	st := &model.GraphStats{
		TotalVessels: len(s.vessels),
		TotalEdges:   len(s.edges),
	}
	for _, v := range s.vessels {
		switch v.Type {
		case model.TypeArtery:
			st.TotalArteries++
		case model.TypeVein:
			st.TotalVeins++
		case model.TypeCapillary:
			st.TotalCapillaries++
		}
		switch v.Oxygenation {
		case model.Oxygenated:
			st.TotalOxygenated++
		case model.Deoxygenated:
			st.TotalDeoxygenated++
		case model.Mixed:
			st.TotalMixed++
		}
	}
	return st
}
