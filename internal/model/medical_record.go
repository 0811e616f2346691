package model

import (
	"github.com/google/uuid"
)

// MedicalRecord is written by a doctor for a client. A record need not
// originate from a booked visit; when AppointmentID is set it must reference
// a finished appointment.
type MedicalRecord struct {
	Base
	ClientID      uuid.UUID  `json:"client_id"`
	ClientName    string     `json:"client_name"`
	DoctorID      uuid.UUID  `json:"doctor_id"`
	DoctorName    string     `json:"doctor_name"`
	FacilityID    uuid.UUID  `json:"facility_id"`
	FacilityName  string     `json:"facility_name"`
	AppointmentID *uuid.UUID `json:"appointment_id,omitempty"`
	Date          string     `json:"date"`
	Diagnosis     string     `json:"diagnosis"`
	Notes         string     `json:"notes"`
	Prescription  string     `json:"prescription"`
}

type AddMedicalRecordRequest struct {
	ClientID      string `json:"client_id" binding:"required,uuid"`
	AppointmentID string `json:"appointment_id" binding:"omitempty,uuid"`
	Date          string `json:"date" binding:"required,datetime=2006-01-02"`
	Diagnosis     string `json:"diagnosis" binding:"required"`
	Notes         string `json:"notes" binding:"max=2000"`
	Prescription  string `json:"prescription" binding:"max=2000"`
}

// RecordFilter narrows record listings. uuid.Nil means any.
type RecordFilter struct {
	ClientID uuid.UUID
	DoctorID uuid.UUID
}
