package graph

import (
	"sort"
	"strings"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// Search returns all vessels whose primary name or any alias contains the
// query as a case-insensitive substring, ordered ascending by name. A vessel
// matching through several aliases appears exactly once. An empty (or
// whitespace-only) query returns every vessel; no minimum query length is
// enforced here.
func (s *Snapshot) Search(query string) []*model.Vessel {
	query = strings.TrimSpace(query)

	var matched []*model.Vessel
	if query == "" {
		matched = s.Vessels()
	} else {
		folded := strings.ToLower(query)
		seen := make(map[int64]bool)
		for _, e := range s.names {
			if seen[e.vesselID] || !strings.Contains(e.folded, folded) {
				continue
			}
			seen[e.vesselID] = true
			matched = append(matched, s.vessels[e.vesselID])
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Name != matched[j].Name {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].ID < matched[j].ID
	})
	return matched
}
