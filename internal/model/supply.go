package model

import (
	"time"

	"github.com/google/uuid"
)

type SupplyStatus string

const (
	SupplyStatusPending  SupplyStatus = "pending"
	SupplyStatusApproved SupplyStatus = "approved"
	SupplyStatusRejected SupplyStatus = "rejected"
)

// SupplyRequest is a facility's ask for stock, reviewed by the authority.
// ApprovedAt is set only when the request is approved.
type SupplyRequest struct {
	ID           uuid.UUID    `json:"id"`
	FacilityID   uuid.UUID    `json:"facility_id"`
	FacilityName string       `json:"facility_name"`
	ItemName     string       `json:"item_name"`
	Quantity     int          `json:"quantity"`
	Status       SupplyStatus `json:"status"`
	RequestedAt  time.Time    `json:"requested_at"`
	ApprovedAt   *time.Time   `json:"approved_at,omitempty"`
}

type CreateSupplyRequestRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type UpdateSupplyRequestStatusRequest struct {
	RequestID string `json:"request_id" binding:"required,uuid"`
	Status    string `json:"status" binding:"required,oneof=approved rejected"`
}

// InventoryItem tracks a facility's current stock of one item.
type InventoryItem struct {
	ID         uuid.UUID `json:"id"`
	FacilityID uuid.UUID `json:"facility_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	Unit       string    `json:"unit"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type UpsertInventoryRequest struct {
	ItemName string `json:"item_name" binding:"required"`
	Quantity int    `json:"quantity" binding:"gte=0"`
	Unit     string `json:"unit"`
}
