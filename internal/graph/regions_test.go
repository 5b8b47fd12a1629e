package graph

import (
	"errors"
	"testing"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

func TestBuildRegionForestTwoRoots(t *testing.T) {
	forest, err := BuildRegionForest([]*model.Region{
		{ID: 1, Name: "Heart"},
		{ID: 2, Name: "Thorax"},
	})
	if err != nil {
		t.Fatalf("BuildRegionForest: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("got %d roots, want 2", len(forest))
	}
	for _, root := range forest {
		if root.Children == nil {
			t.Errorf("root %q has nil Children, want empty slice", root.Name)
		}
		if len(root.Children) != 0 {
			t.Errorf("root %q has %d children, want 0", root.Name, len(root.Children))
		}
	}
}

func TestBuildRegionForestNesting(t *testing.T) {
	thorax := int64(1)
	heart := int64(2)
	forest, err := BuildRegionForest([]*model.Region{
		{ID: 1, Name: "Thorax"},
		{ID: 2, Name: "Heart", ParentID: &thorax},
		{ID: 3, Name: "Left Ventricle", ParentID: &heart},
		{ID: 4, Name: "Right Ventricle", ParentID: &heart},
		{ID: 5, Name: "Abdomen"},
	})
	if err != nil {
		t.Fatalf("BuildRegionForest: %v", err)
	}
	if len(forest) != 2 {
		t.Fatalf("got %d roots, want 2", len(forest))
	}
	// Roots ordered by name.
	if forest[0].Name != "Abdomen" || forest[1].Name != "Thorax" {
		t.Fatalf("root order = [%s, %s]", forest[0].Name, forest[1].Name)
	}
	tx := forest[1]
	if len(tx.Children) != 1 || tx.Children[0].Name != "Heart" {
		t.Fatalf("Thorax children = %+v", tx.Children)
	}
	hrt := tx.Children[0]
	if len(hrt.Children) != 2 {
		t.Fatalf("Heart has %d children, want 2", len(hrt.Children))
	}
	if hrt.Children[0].Name != "Left Ventricle" || hrt.Children[1].Name != "Right Ventricle" {
		t.Errorf("Heart children order = [%s, %s]", hrt.Children[0].Name, hrt.Children[1].Name)
	}
}

func TestBuildRegionForestPreservesCount(t *testing.T) {
	parent := int64(1)
	regions := []*model.Region{
		{ID: 1, Name: "Root"},
	}
	for i := int64(2); i <= 10; i++ {
		regions = append(regions, &model.Region{ID: i, Name: "Child", ParentID: &parent})
	}
	forest, err := BuildRegionForest(regions)
	if err != nil {
		t.Fatalf("BuildRegionForest: %v", err)
	}
	total := 0
	for _, root := range forest {
		total += root.Size()
	}
	if total != len(regions) {
		t.Errorf("forest holds %d regions, want %d", total, len(regions))
	}
}

func TestBuildRegionForestCycle(t *testing.T) {
	a, b := int64(1), int64(2)
	_, err := BuildRegionForest([]*model.Region{
		{ID: 1, Name: "A", ParentID: &b},
		{ID: 2, Name: "B", ParentID: &a},
	})
	var ierr *IntegrityError
	if !errors.As(err, &ierr) {
		t.Fatalf("got %v, want IntegrityError", err)
	}
}

func TestBuildRegionForestSelfCycle(t *testing.T) {
	self := int64(1)
	_, err := BuildRegionForest([]*model.Region{
		{ID: 1, Name: "Loop", ParentID: &self},
	})
	var ierr *IntegrityError
	if !errors.As(err, &ierr) {
		t.Fatalf("got %v, want IntegrityError", err)
	}
}

func TestBuildRegionForestMissingParentBecomesRoot(t *testing.T) {
	ghost := int64(99)
	forest, err := BuildRegionForest([]*model.Region{
		{ID: 1, Name: "Orphan", ParentID: &ghost},
	})
	if err != nil {
		t.Fatalf("BuildRegionForest: %v", err)
	}
	if len(forest) != 1 || forest[0].Name != "Orphan" {
		t.Fatalf("forest = %+v, want single Orphan root", forest)
	}
}

func TestBuildRegionForestEmpty(t *testing.T) {
	forest, err := BuildRegionForest(nil)
	if err != nil {
		t.Fatalf("BuildRegionForest: %v", err)
	}
	if forest == nil || len(forest) != 0 {
		t.Fatalf("forest = %#v, want empty non-nil slice", forest)
	}
}
