package dto

// StopRequest describes one requested stop: a free-form address or a
// city/state pair. Address wins when both are present.
type StopRequest struct {
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
}

// EtaRequest is the compute-itinerary input. A free-text query, when
// it parses, overrides truck_no, origin_city/origin_state and the
// legacy city/state pair; an explicit destinations list always wins
// over the query's destination.
type EtaRequest struct {
	Query string `json:"query"`

	TruckNo string `json:"truck_no"`

	// Legacy single destination.
	City  string `json:"city"`
	State string `json:"state"`

	OriginCity  string `json:"origin_city"`
	OriginState string `json:"origin_state"`

	Destinations []StopRequest `json:"destinations"`

	// Optional chat to receive a formatted reply.
	ChatID int64 `json:"chat_id"`
}

type VehicleResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

type OriginResponse struct {
	Label   string  `json:"label"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	MapLink string  `json:"map_link"`
}

type PlaceResponse struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	City  string  `json:"city,omitempty"`
	State string  `json:"state,omitempty"`
}

type LegResponse struct {
	Index           int           `json:"index"`
	Origin          PlaceResponse `json:"origin"`
	Destination     PlaceResponse `json:"destination"`
	DistanceKm      float64       `json:"distance_km"`
	DistanceMiles   float64       `json:"distance_miles"`
	DurationSeconds int           `json:"duration_seconds"`
	Duration        string        `json:"duration"`
	ArrivalTime     string        `json:"arrival_time"`
	DirectionsLink  string        `json:"directions_link"`
}

type SummaryResponse struct {
	TotalDistanceKm      float64 `json:"total_distance_km"`
	TotalDistanceMiles   float64 `json:"total_distance_miles"`
	TotalDurationSeconds int     `json:"total_duration_seconds"`
	TotalDuration        string  `json:"total_duration"`
	FinalArrivalTime     string  `json:"final_arrival_time"`
	RouteLink            string  `json:"route_link"`
}

// EtaFields is the flattened single-leg view kept for
// single-destination consumers. Populated only when the itinerary has
// exactly one leg, mirroring legs[0].
type EtaFields struct {
	DistanceKm      float64 `json:"distance_km"`
	DistanceMiles   float64 `json:"distance_miles"`
	DurationSeconds int     `json:"duration_seconds"`
	Duration        string  `json:"duration"`
	ArrivalTime     string  `json:"arrival_time"`
	DirectionsLink  string  `json:"directions_link"`
}

type EtaResponse struct {
	Mode    string           `json:"mode"`
	Vehicle *VehicleResponse `json:"vehicle,omitempty"`
	Origin  OriginResponse   `json:"origin"`
	Legs    []LegResponse    `json:"legs"`
	Summary SummaryResponse  `json:"summary"`

	Eta         *EtaFields     `json:"eta,omitempty"`
	Destination *PlaceResponse `json:"destination,omitempty"`
}
