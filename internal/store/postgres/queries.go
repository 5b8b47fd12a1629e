package postgres

import (
	"context"
	"database/sql"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// vesselColumns is the column list used for SELECT statements on the vessels table.
const vesselColumns = `id, name, type, oxygenation, diameter_min_mm, diameter_max_mm,
	description, clinical_notes, region_id, created_at, updated_at`

// executor is the interface satisfied by both *sql.DB and *sql.Tx.
type executor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func queryListVessels(ctx context.Context, db executor) ([]*model.Vessel, error) {
	rows, err := db.QueryContext(ctx, `SELECT `+vesselColumns+` FROM vessels ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVessels(rows)
}

func queryListEdges(ctx context.Context, db executor) ([]*model.Edge, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, parent_id, child_id, flow_direction, label
		FROM vessel_edges ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEdges(rows)
}

func queryListAliases(ctx context.Context, db executor) ([]*model.Alias, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, vessel_id, alias
		FROM aliases ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAliases(rows)
}

func queryListRegions(ctx context.Context, db executor) ([]*model.Region, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, name, parent_id, description
		FROM regions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegions(rows)
}

func queryListNotes(ctx context.Context, db executor) ([]*model.Note, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, vessel_id, title, markdown, created_at
		FROM notes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotes(rows)
}
