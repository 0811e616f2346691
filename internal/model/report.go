package model

// NationalOverview aggregates network-wide statistics for the authority.
type NationalOverview struct {
	FacilitiesByType      map[FacilityType]int      `json:"facilities_by_type"`
	AppointmentsByStatus  map[AppointmentStatus]int `json:"appointments_by_status"`
	TotalBeds             int                       `json:"total_beds"`
	OccupiedBeds          int                       `json:"occupied_beds"`
	OccupancyRate         float64                   `json:"occupancy_rate"`
	PendingSupplyRequests int                       `json:"pending_supply_requests"`
	AverageRating         float64                   `json:"average_rating"`
	RegisteredClients     int                       `json:"registered_clients"`
}
