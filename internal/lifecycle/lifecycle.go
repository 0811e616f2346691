// Package lifecycle owns the status state machines. Every status change in
// the system goes through these checks; there is no other mutation path.
package lifecycle

import (
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/pkg/errors"
)

var appointmentEdges = map[model.AppointmentStatus][]model.AppointmentStatus{
	model.AppointmentStatusPending:  {model.AppointmentStatusApproved, model.AppointmentStatusCancelled},
	model.AppointmentStatusApproved: {model.AppointmentStatusFinished},
}

var supplyEdges = map[model.SupplyStatus][]model.SupplyStatus{
	model.SupplyStatusPending: {model.SupplyStatusApproved, model.SupplyStatusRejected},
}

// CanTransitionAppointment reports whether from->to is an allowed edge.
// Cancelled and finished are terminal.
func CanTransitionAppointment(from, to model.AppointmentStatus) bool {
	for _, next := range appointmentEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionAppointment validates an appointment status change.
func TransitionAppointment(from, to model.AppointmentStatus) error {
	if !CanTransitionAppointment(from, to) {
		return errors.InvalidTransition("appointment", string(from), string(to))
	}
	return nil
}

// CanTransitionSupply reports whether from->to is an allowed edge.
// Approved and rejected are terminal.
func CanTransitionSupply(from, to model.SupplyStatus) bool {
	for _, next := range supplyEdges[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionSupply validates a supply request status change.
func TransitionSupply(from, to model.SupplyStatus) error {
	if !CanTransitionSupply(from, to) {
		return errors.InvalidTransition("supply request", string(from), string(to))
	}
	return nil
}
