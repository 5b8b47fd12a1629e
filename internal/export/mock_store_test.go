package export

import (
	"context"
	"time"

	"github.com/eshan-bhimani/vaso-map/internal/model"
)

// mockStore is a minimal in-memory store for export tests.
type mockStore struct {
	vessels []*model.Vessel
	edges   []*model.Edge
	aliases []*model.Alias
	regions []*model.Region
	notes   []*model.Note
}

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) LoadDataset(_ context.Context) (*model.Dataset, error) {
	return &model.Dataset{
		Vessels:  m.vessels,
		Edges:    m.edges,
		Aliases:  m.aliases,
		Regions:  m.regions,
		Notes:    m.notes,
		LoadedAt: time.Now().UTC(),
	}, nil
}

func (m *mockStore) ListVessels(_ context.Context) ([]*model.Vessel, error) {
	return m.vessels, nil
}

func (m *mockStore) ListEdges(_ context.Context) ([]*model.Edge, error) {
	return m.edges, nil
}

func (m *mockStore) ListAliases(_ context.Context) ([]*model.Alias, error) {
	return m.aliases, nil
}

func (m *mockStore) ListRegions(_ context.Context) ([]*model.Region, error) {
	return m.regions, nil
}

func (m *mockStore) ListNotes(_ context.Context) ([]*model.Note, error) {
	return m.notes, nil
}

func (m *mockStore) Ping(_ context.Context) error {
	return nil
}

func (m *mockStore) Close() error {
	return nil
}
