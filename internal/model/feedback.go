package model

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is append-only; entries have no lifecycle.
type Feedback struct {
	ID           uuid.UUID `json:"id"`
	ClientName   string    `json:"client_name"`
	FacilityID   uuid.UUID `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	Date         time.Time `json:"date"`
}

type SubmitFeedbackRequest struct {
	FacilityID string `json:"facility_id" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"max=1000"`
}
