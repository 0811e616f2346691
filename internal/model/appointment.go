package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusApproved  AppointmentStatus = "approved"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusFinished  AppointmentStatus = "finished"
)

// Appointment links a client, a doctor, and a facility at a point in time.
// The display names are snapshots resolved at creation; renaming the
// referenced entities later does not propagate here.
type Appointment struct {
	Base
	ClientID     uuid.UUID         `json:"client_id"`
	ClientName   string            `json:"client_name"`
	DoctorID     uuid.UUID         `json:"doctor_id"`
	DoctorName   string            `json:"doctor_name"`
	FacilityID   uuid.UUID         `json:"facility_id"`
	FacilityName string            `json:"facility_name"`
	DateTime     time.Time         `json:"date_time"`
	Reason       string            `json:"reason"`
	Status       AppointmentStatus `json:"status"`
}

// CreateAppointmentRequest books a visit. ClientID may be omitted by
// clients (it is taken from the session); when present for a client caller
// it must match the session identity.
type CreateAppointmentRequest struct {
	ClientID   string    `json:"client_id" binding:"omitempty,uuid"`
	FacilityID string    `json:"facility_id" binding:"required,uuid"`
	DoctorID   string    `json:"doctor_id" binding:"required,uuid"`
	DateTime   time.Time `json:"date_time" binding:"required"`
	Reason     string    `json:"reason" binding:"required,max=500"`
}

type UpdateAppointmentStatusRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required,uuid"`
	Status        string `json:"status" binding:"required,oneof=pending approved cancelled finished"`
}

// AppointmentFilter narrows appointment listings. uuid.Nil means any.
type AppointmentFilter struct {
	ClientID   uuid.UUID
	DoctorID   uuid.UUID
	FacilityID uuid.UUID
	Status     AppointmentStatus
}
