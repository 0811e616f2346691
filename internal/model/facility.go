package model

// FacilityType categorizes a facility within the network.
type FacilityType string

const (
	FacilityTypeHospital     FacilityType = "hospital"
	FacilityTypeClinic       FacilityType = "clinic"
	FacilityTypeHealthCenter FacilityType = "health_center"
)

func (t FacilityType) Valid() bool {
	switch t {
	case FacilityTypeHospital, FacilityTypeClinic, FacilityTypeHealthCenter:
		return true
	}
	return false
}

// Facility is a hospital, clinic, or health center. Doctors is a derived
// view over users with role doctor affiliated to this facility; the store
// materializes it on every read, it is never independent state.
type Facility struct {
	Base
	Name         string       `json:"name"`
	Type         FacilityType `json:"type"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"`
	Region       string       `json:"region"`
	Beds         int          `json:"beds"`
	OccupiedBeds int          `json:"occupied_beds"`
	Doctors      []*User      `json:"doctors"`
}

type CreateFacilityRequest struct {
	Name         string `json:"name" binding:"required"`
	Type         string `json:"type" binding:"required,oneof=hospital clinic health_center"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
	Region       string `json:"region" binding:"required"`
	Beds         int    `json:"beds" binding:"required,gte=0"`
	OccupiedBeds *int   `json:"occupied_beds" binding:"omitempty,gte=0"`
}

type UpdateFacilityRequest struct {
	Name         *string `json:"name"`
	Type         *string `json:"type" binding:"omitempty,oneof=hospital clinic health_center"`
	Address      *string `json:"address"`
	Phone        *string `json:"phone"`
	Region       *string `json:"region"`
	Beds         *int    `json:"beds" binding:"omitempty,gte=0"`
	OccupiedBeds *int    `json:"occupied_beds" binding:"omitempty,gte=0"`
}

type AssignDoctorRequest struct {
	FacilityID string `json:"facility_id" binding:"required,uuid"`
	DoctorID   string `json:"doctor_id" binding:"required,uuid"`
}
