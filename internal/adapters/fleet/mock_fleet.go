package fleet

import (
	"context"

	"fleet-eta-service/internal/ports"
)

// MockDirectory serves fixed directory pages keyed by cursor.
// Page "" is the first page; NextCursor values name later pages.
type MockDirectory struct {
	Pages map[string]ports.VehiclePage
}

func NewMockDirectory(pages map[string]ports.VehiclePage) *MockDirectory {
	return &MockDirectory{Pages: pages}
}

func (m *MockDirectory) ListVehicles(ctx context.Context, cursor string) (ports.VehiclePage, error) {
	return m.Pages[cursor], nil
}

// MockSnapshots serves fixed snapshots keyed by vehicle ID.
type MockSnapshots struct {
	ByVehicle map[string]ports.Snapshot
}

func NewMockSnapshots(byVehicle map[string]ports.Snapshot) *MockSnapshots {
	return &MockSnapshots{ByVehicle: byVehicle}
}

func (m *MockSnapshots) GetSnapshot(ctx context.Context, vehicleID string) (ports.Snapshot, bool, error) {
	snap, ok := m.ByVehicle[vehicleID]
	return snap, ok, nil
}
