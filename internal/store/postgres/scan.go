package postgres

import (
	"database/sql"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanVessel scans a single row into a model.Vessel.
// The row must contain columns in the order defined by vesselColumns.
func scanVessel(row scannable) (*model.Vessel, error) {
	var v model.Vessel
	var (
		diameterMin   sql.NullFloat64
		diameterMax   sql.NullFloat64
		description   sql.NullString
		clinicalNotes sql.NullString
		regionID      sql.NullInt64
	)

	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.Type,
		&v.Oxygenation,
		&diameterMin,
		&diameterMax,
		&description,
		&clinicalNotes,
		&regionID,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	v.Description = description.String
	v.ClinicalNotes = clinicalNotes.String
	if diameterMin.Valid {
		f := diameterMin.Float64
		v.DiameterMinMM = &f
	}
	if diameterMax.Valid {
		f := diameterMax.Float64
		v.DiameterMaxMM = &f
	}
	if regionID.Valid {
		id := regionID.Int64
		v.RegionID = &id
	}

	return &v, nil
}

// scanVessels scans multiple rows into a slice of model.Vessel pointers.
func scanVessels(rows *sql.Rows) ([]*model.Vessel, error) {
	var vessels []*model.Vessel
	for rows.Next() {
		v, err := scanVessel(rows)
		if err != nil {
			return nil, err
		}
		vessels = append(vessels, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return vessels, nil
}

// scanEdge scans a single row into a model.Edge.
func scanEdge(row scannable) (*model.Edge, error) {
	var e model.Edge
	var label sql.NullString
	err := row.Scan(
		&e.ID,
		&e.ParentID,
		&e.ChildID,
		&e.FlowDirection,
		&label,
	)
	if err != nil {
		return nil, err
	}
	e.Label = label.String
	return &e, nil
}

// scanEdges scans multiple rows into a slice of model.Edge pointers.
func scanEdges(rows *sql.Rows) ([]*model.Edge, error) {
	var edges []*model.Edge
	for rows.Next() {
		e, err := scanEdge(rows)
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return edges, nil
}

// scanAlias scans a single row into a model.Alias.
func scanAlias(row scannable) (*model.Alias, error) {
	var a model.Alias
	if err := row.Scan(&a.ID, &a.VesselID, &a.Alias); err != nil {
		return nil, err
	}
	return &a, nil
}

// scanAliases scans multiple rows into a slice of model.Alias pointers.
func scanAliases(rows *sql.Rows) ([]*model.Alias, error) {
	var aliases []*model.Alias
	for rows.Next() {
		a, err := scanAlias(rows)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return aliases, nil
}

// scanRegion scans a single row into a model.Region.
func scanRegion(row scannable) (*model.Region, error) {
	var r model.Region
	var (
		parentID    sql.NullInt64
		description sql.NullString
	)
	err := row.Scan(&r.ID, &r.Name, &parentID, &description)
	if err != nil {
		return nil, err
	}
	if parentID.Valid {
		id := parentID.Int64
		r.ParentID = &id
	}
	r.Description = description.String
	return &r, nil
}

// scanRegions scans multiple rows into a slice of model.Region pointers.
func scanRegions(rows *sql.Rows) ([]*model.Region, error) {
	var regions []*model.Region
	for rows.Next() {
		r, err := scanRegion(rows)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return regions, nil
}

// scanNote scans a single row into a model.Note.
func scanNote(row scannable) (*model.Note, error) {
	var n model.Note
	var title sql.NullString
	err := row.Scan(&n.ID, &n.VesselID, &title, &n.Markdown, &n.CreatedAt)
	if err != nil {
		return nil, err
	}
	n.Title = title.String
	return &n, nil
}

// scanNotes scans multiple rows into a slice of model.Note pointers.
func scanNotes(rows *sql.Rows) ([]*model.Note, error) {
	var notes []*model.Note
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
