package graph

import (
	"sort"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// BuildRegionForest assembles the flat region records into a forest of root
// nodes with recursively populated children. Children within a parent (and
// the roots themselves) are ordered ascending by name. A region whose parent
// id does not resolve is treated as a root.
//
// Nothing in the record structure prevents a parent-link cycle, so the walk
// is checked explicitly; a cycle fails the build with *IntegrityError.
func BuildRegionForest(regions []*model.Region) ([]*model.RegionNode, error) {
	if err := checkRegionCycles(regions); err != nil {
		return nil, err
	}

	nodes := make(map[int64]*model.RegionNode, len(regions))
	for _, r := range regions {
		nodes[r.ID] = &model.RegionNode{
			ID:          r.ID,
			Name:        r.Name,
			ParentID:    r.ParentID,
			Description: r.Description,
			Children:    []*model.RegionNode{},
		}
	}

	var roots []*model.RegionNode
	for _, r := range regions {
		n := nodes[r.ID]
		if r.ParentID != nil {
			if p, ok := nodes[*r.ParentID]; ok {
				p.Children = append(p.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	for _, n := range nodes {
		sortRegionNodes(n.Children)
	}
	sortRegionNodes(roots)

	if roots == nil {
		roots = []*model.RegionNode{}
	}
	return roots, nil
}

func sortRegionNodes(ns []*model.RegionNode) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].Name != ns[j].Name {
			return ns[i].Name < ns[j].Name
		}
		return ns[i].ID < ns[j].ID
	})
}

// checkRegionCycles follows parent links from every region and reports a
// region reachable from itself. Regions already proven acyclic are skipped,
// keeping the walk linear overall.
func checkRegionCycles(regions []*model.Region) error {
	byID := make(map[int64]*model.Region, len(regions))
	for _, r := range regions {
		byID[r.ID] = r
	}

	safe := make(map[int64]bool, len(regions))
	for _, r := range regions {
		onWalk := make(map[int64]bool)
		var walk []int64
		for cur := r; cur != nil; {
			if safe[cur.ID] {
				break
			}
			if onWalk[cur.ID] {
				return integrityf("cycle in region hierarchy at region %d (%s)", cur.ID, cur.Name)
			}
			onWalk[cur.ID] = true
			walk = append(walk, cur.ID)

			if cur.ParentID == nil {
				break
			}
			cur = byID[*cur.ParentID]
		}
		for _, id := range walk {
			safe[id] = true
		}
	}
	return nil
}
