package model

// Region is an anatomical location. Regions form a rooted forest via
// ParentID; they are referenced by vessels but are not part of the
// vessel graph itself.
type Region struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// RegionNode is a region together with its recursively populated children,
// as returned by the region forest endpoint.
type RegionNode struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	ParentID    *int64        `json:"parent_id,omitempty"`
	Description string        `json:"description,omitempty"`
	Children    []*RegionNode `json:"children"`
}

// Size returns the number of regions in the subtree rooted at n,
// including n itself.
func (n *RegionNode) Size() int {
	total := 1
	for _, c := range n.Children {
		total += c.Size()
	}
	return total
}
