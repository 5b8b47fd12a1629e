package graph

import (
	"errors"
	"testing"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// testDataset builds a small coronary fixture:
//
//	Aorta(1) → LCA(2) → LAD(3)
//	                  → Circumflex(4)
//	Great Cardiac Vein(12) has no incoming edges.
func testDataset() *model.Dataset {
	heart := int64(1)
	return &model.Dataset{
		Vessels: []*model.Vessel{
			{ID: 1, Name: "Aorta", Type: model.TypeArtery, Oxygenation: model.Oxygenated},
			{ID: 2, Name: "Left Coronary Artery", Type: model.TypeArtery, Oxygenation: model.Oxygenated, RegionID: &heart},
			{ID: 3, Name: "Left Anterior Descending Artery", Type: model.TypeArtery, Oxygenation: model.Oxygenated, RegionID: &heart},
			{ID: 4, Name: "Circumflex Artery", Type: model.TypeArtery, Oxygenation: model.Oxygenated, RegionID: &heart},
			{ID: 12, Name: "Great Cardiac Vein", Type: model.TypeVein, Oxygenation: model.Deoxygenated, RegionID: &heart},
		},
		Edges: []*model.Edge{
			{ID: 1, ParentID: 1, ChildID: 2, FlowDirection: model.FlowForward, Label: "left main ostium"},
			{ID: 2, ParentID: 2, ChildID: 3, FlowDirection: model.FlowForward},
			{ID: 3, ParentID: 2, ChildID: 4, FlowDirection: model.FlowForward},
		},
		Aliases: []*model.Alias{
			{ID: 1, VesselID: 2, Alias: "LCA"},
			{ID: 2, VesselID: 3, Alias: "LAD"},
			{ID: 3, VesselID: 3, Alias: "Anterior Interventricular Artery"},
		},
		Regions: []*model.Region{
			{ID: 1, Name: "Heart"},
			{ID: 2, Name: "Thorax"},
		},
		Notes: []*model.Note{
			{ID: 1, VesselID: 3, Title: "Widow-maker", Markdown: "Proximal LAD occlusion carries high mortality."},
		},
	}
}

func mustSnapshot(t *testing.T, ds *model.Dataset) *Snapshot {
	t.Helper()
	s, err := NewSnapshot(ds)
	if err != nil {
		t.Fatalf("NewSnapshot: %v", err)
	}
	return s
}

func TestSnapshotVesselLookup(t *testing.T) {
	s := mustSnapshot(t, testDataset())

	v, err := s.Vessel(3)
	if err != nil {
		t.Fatalf("Vessel(3): %v", err)
	}
	if v.Name != "Left Anterior Descending Artery" {
		t.Errorf("Vessel(3).Name = %q", v.Name)
	}
	if len(v.Aliases) != 2 {
		t.Errorf("Vessel(3) aliases = %v, want 2 entries", v.Aliases)
	}

	_, err = s.Vessel(99)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Vessel(99) err = %v, want *NotFoundError", err)
	}
	if nf.Kind != "vessel" || nf.ID != 99 {
		t.Errorf("NotFoundError = %+v", nf)
	}
}

func TestSnapshotVesselsOrderedByID(t *testing.T) {
	s := mustSnapshot(t, testDataset())
	vs := s.Vessels()
	if len(vs) != 5 {
		t.Fatalf("Vessels() returned %d, want 5", len(vs))
	}
	for i := 1; i < len(vs); i++ {
		if vs[i-1].ID >= vs[i].ID {
			t.Errorf("Vessels() out of order at %d: %d >= %d", i, vs[i-1].ID, vs[i].ID)
		}
	}
}

func TestSnapshotAdjacency(t *testing.T) {
	s := mustSnapshot(t, testDataset())

	out := s.Outgoing(2)
	if len(out) != 2 || out[0].VesselID != 3 || out[1].VesselID != 4 {
		t.Errorf("Outgoing(2) = %+v, want [3 4] in insertion order", out)
	}

	in := s.Incoming(2)
	if len(in) != 1 || in[0].VesselID != 1 {
		t.Errorf("Incoming(2) = %+v, want [1]", in)
	}
	if in[0].Label != "left main ostium" {
		t.Errorf("Incoming(2) label = %q", in[0].Label)
	}

	if got := s.Outgoing(12); len(got) != 0 {
		t.Errorf("Outgoing(12) = %+v, want empty", got)
	}
}

func TestSnapshotDuplicateVesselID(t *testing.T) {
	ds := testDataset()
	ds.Vessels = append(ds.Vessels, &model.Vessel{
		ID: 1, Name: "Aorta again", Type: model.TypeArtery, Oxygenation: model.Oxygenated,
	})
	_, err := NewSnapshot(ds)
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *IntegrityError", err)
	}
}

func TestSnapshotRejectsDanglingEdge(t *testing.T) {
	ds := testDataset()
	ds.Edges = append(ds.Edges, &model.Edge{ID: 9, ParentID: 1, ChildID: 77, FlowDirection: model.FlowForward})
	_, err := NewSnapshot(ds)
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *IntegrityError", err)
	}
}

func TestSnapshotRejectsDuplicateEdgePair(t *testing.T) {
	ds := testDataset()
	ds.Edges = append(ds.Edges, &model.Edge{ID: 9, ParentID: 1, ChildID: 2, FlowDirection: model.FlowReverse})
	_, err := NewSnapshot(ds)
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *IntegrityError", err)
	}
}

func TestSnapshotRejectsBlankAlias(t *testing.T) {
	for _, alias := range []string{"", "   "} {
		ds := testDataset()
		ds.Aliases = append(ds.Aliases, &model.Alias{ID: 9, VesselID: 2, Alias: alias})
		_, err := NewSnapshot(ds)
		var ie *IntegrityError
		if !errors.As(err, &ie) {
			t.Fatalf("alias %q: err = %v, want *IntegrityError", alias, err)
		}
	}
}

func TestSnapshotRejectsInvalidVessel(t *testing.T) {
	ds := testDataset()
	ds.Vessels = append(ds.Vessels, &model.Vessel{ID: 50, Name: "", Type: "BAD", Oxygenation: model.Mixed})
	_, err := NewSnapshot(ds)
	var ie *IntegrityError
	if !errors.As(err, &ie) {
		t.Fatalf("err = %v, want *IntegrityError", err)
	}
	var ve *model.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err should wrap *model.ValidationError, got %v", err)
	}
}

func TestSnapshotDetail(t *testing.T) {
	s := mustSnapshot(t, testDataset())

	d, err := s.Detail(2)
	if err != nil {
		t.Fatalf("Detail(2): %v", err)
	}
	if d.Region == nil || d.Region.Name != "Heart" {
		t.Errorf("Detail(2).Region = %+v, want Heart", d.Region)
	}
	if len(d.UpstreamNeighbors) != 1 || d.UpstreamNeighbors[0].Name != "Aorta" {
		t.Errorf("upstream = %+v", d.UpstreamNeighbors)
	}
	if len(d.DownstreamNeighbors) != 2 ||
		d.DownstreamNeighbors[0].ID != 3 || d.DownstreamNeighbors[1].ID != 4 {
		t.Errorf("downstream = %+v", d.DownstreamNeighbors)
	}

	d3, err := s.Detail(3)
	if err != nil {
		t.Fatalf("Detail(3): %v", err)
	}
	if len(d3.Notes) != 1 || d3.Notes[0].Title != "Widow-maker" {
		t.Errorf("Detail(3).Notes = %+v", d3.Notes)
	}

	if _, err := s.Detail(99); err == nil {
		t.Error("Detail(99) should fail")
	}
}

func TestSnapshotStats(t *testing.T) {
	s := mustSnapshot(t, testDataset())
	st := s.Stats()
	if st.TotalVessels != 5 || st.TotalEdges != 3 {
		t.Errorf("totals = %d vessels / %d edges", st.TotalVessels, st.TotalEdges)
	}
	if st.TotalArteries != 4 || st.TotalVeins != 1 || st.TotalCapillaries != 0 {
		t.Errorf("by type = %d/%d/%d", st.TotalArteries, st.TotalVeins, st.TotalCapillaries)
	}
	if st.TotalOxygenated != 4 || st.TotalDeoxygenated != 1 {
		t.Errorf("by oxygenation = %d/%d", st.TotalOxygenated, st.TotalDeoxygenated)
	}
}
