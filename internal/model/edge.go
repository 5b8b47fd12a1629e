package model

// FlowDirection tags an edge with the direction of blood flow relative to
// the parent→child branch relation. REVERSE is representational only; the
// traversal algorithms treat all edges alike.
type FlowDirection string

const (
	FlowForward FlowDirection = "FORWARD"
	FlowReverse FlowDirection = "REVERSE"
)

// String returns the string representation of the flow direction.
func (d FlowDirection) String() string {
	return string(d)
}

// IsValid checks whether the flow direction is a known value.
func (d FlowDirection) IsValid() bool {
	switch d {
	case FlowForward, FlowReverse:
		return true
	}
	return false
}

// Edge is a directed branch connection from a parent vessel to a child
// vessel. At most one edge exists per ordered (parent, child) pair.
type Edge struct {
	ID            int64         `json:"id"`
	ParentID      int64         `json:"parent_id"`
	ChildID       int64         `json:"child_id"`
	FlowDirection FlowDirection `json:"flow_direction"`
	Label         string        `json:"label,omitempty"`
}
