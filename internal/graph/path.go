package graph

import "github.com/eshan-bhimani/vaso-map/internal/model"

// DefaultMaxDepth caps the number of edges BFS will traverse along any
// candidate path. It bounds worst-case work on pathological inputs and does
// not express domain truth.
const DefaultMaxDepth = 20

// ShortestPath computes the shortest directed path (fewest edges) from
// sourceID to targetID over the outgoing adjacency relation, inclusive of
// both endpoints. maxDepth <= 0 selects DefaultMaxDepth.
//
// Breadth-first search visits each vessel's outgoing neighbors in edge
// insertion order and marks a vessel visited the moment it is enqueued, so
// among equally short paths the first one in traversal order is returned and
// repeated calls yield identical results. Paths longer than maxDepth edges
// are treated as non-existent.
//
// Returns *NotFoundError if either endpoint does not exist, and *NoPathError
// (naming both vessel names) if the reachable set is exhausted without
// hitting the target.
func (s *Snapshot) ShortestPath(sourceID, targetID int64, maxDepth int) (*model.Path, error) {
	source, err := s.Vessel(sourceID)
	if err != nil {
		return nil, err
	}
	target, err := s.Vessel(targetID)
	if err != nil {
		return nil, err
	}

	if sourceID == targetID {
		return &model.Path{
			Vessels: []*model.VesselNeighbor{pathVessel(source)},
			Length:  1,
		}, nil
	}

	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	type frame struct {
		id    int64
		depth int
	}
	queue := []frame{{id: sourceID}}
	visited := map[int64]bool{sourceID: true}
	parent := make(map[int64]int64)

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.depth == maxDepth {
			continue
		}
		for _, n := range s.outgoing[cur.id] {
			if visited[n.VesselID] {
				continue
			}
			visited[n.VesselID] = true
			parent[n.VesselID] = cur.id

			if n.VesselID == targetID {
				return s.buildPath(sourceID, targetID, parent), nil
			}
			queue = append(queue, frame{id: n.VesselID, depth: cur.depth + 1})
		}
	}

	return nil, &NoPathError{SourceName: source.Name, TargetName: target.Name}
}

// buildPath walks the parent links back from target to source and reverses.
func (s *Snapshot) buildPath(sourceID, targetID int64, parent map[int64]int64) *model.Path {
	var ids []int64
	for id := targetID; ; {
		ids = append(ids, id)
		if id == sourceID {
			break
		}
		id = parent[id]
	}

	vessels := make([]*model.VesselNeighbor, len(ids))
	for i, id := range ids {
		vessels[len(ids)-1-i] = pathVessel(s.vessels[id])
	}
	return &model.Path{Vessels: vessels, Length: len(vessels)}
}

func pathVessel(v *model.Vessel) *model.VesselNeighbor {
	return &model.VesselNeighbor{ID: v.ID, Name: v.Name, Type: v.Type}
}
