package ports

import "context"

// A vehicle known to the fleet telemetry provider.
type Vehicle struct {
	ID   string
	Name string
}

// One page of the vehicle directory listing.
type VehiclePage struct {
	Vehicles   []Vehicle
	NextCursor string
}

// Port: cursor-paged access to the fleet's vehicle directory.
type FleetDirectory interface {
	// Return one page of vehicles. An empty cursor requests the first
	// page; an empty NextCursor in the result means pages are exhausted.
	ListVehicles(ctx context.Context, cursor string) (VehiclePage, error)
}

// Latest GPS fix for a vehicle, with an optional reverse-geocoded
// location string supplied by the telemetry provider.
type Snapshot struct {
	Lat      float64
	Lng      float64
	Location string
}

// Port: retrieval of a vehicle's current GPS snapshot.
type SnapshotProvider interface {
	// Return the vehicle's latest snapshot, or ok=false when the
	// provider has no fix for it.
	GetSnapshot(ctx context.Context, vehicleID string) (Snapshot, bool, error)
}
