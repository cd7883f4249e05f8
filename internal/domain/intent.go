package domain

// IntentMode discriminates the two shapes a free-text query can take.
type IntentMode string

const (
	// The query names a vehicle (optionally followed by a destination).
	IntentVehicle IntentMode = "vehicle"
	// The query names an origin city/state followed by a destination.
	IntentCity IntentMode = "city"
)

// ParsedIntent is the structured reading of a free-text query.
// It is produced once per query and never mutated. Exactly one of the
// vehicle fields or the origin fields is populated, per Mode.
type ParsedIntent struct {
	Mode IntentMode

	VehicleRef string

	OriginCity  string
	OriginState string

	DestinationCity  string
	DestinationState string
}

// HasDestination reports whether the query carried a destination suffix.
func (p ParsedIntent) HasDestination() bool {
	return p.DestinationCity != "" && p.DestinationState != ""
}
