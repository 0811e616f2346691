package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/pkg/errors"
)

func TestAppointmentTransitions(t *testing.T) {
	allowed := []struct {
		from, to model.AppointmentStatus
	}{
		{model.AppointmentStatusPending, model.AppointmentStatusApproved},
		{model.AppointmentStatusPending, model.AppointmentStatusCancelled},
		{model.AppointmentStatusApproved, model.AppointmentStatusFinished},
	}
	for _, tc := range allowed {
		assert.NoError(t, TransitionAppointment(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct {
		from, to model.AppointmentStatus
	}{
		{model.AppointmentStatusPending, model.AppointmentStatusFinished},
		{model.AppointmentStatusApproved, model.AppointmentStatusCancelled},
		{model.AppointmentStatusApproved, model.AppointmentStatusPending},
		{model.AppointmentStatusCancelled, model.AppointmentStatusApproved},
		{model.AppointmentStatusCancelled, model.AppointmentStatusPending},
		{model.AppointmentStatusFinished, model.AppointmentStatusApproved},
		{model.AppointmentStatusFinished, model.AppointmentStatusCancelled},
		{model.AppointmentStatusPending, model.AppointmentStatusPending},
	}
	for _, tc := range denied {
		err := TransitionAppointment(tc.from, tc.to)
		require.Error(t, err, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, errors.KindInvalidTransition, errors.KindOf(err))
	}
}

func TestSupplyTransitions(t *testing.T) {
	assert.NoError(t, TransitionSupply(model.SupplyStatusPending, model.SupplyStatusApproved))
	assert.NoError(t, TransitionSupply(model.SupplyStatusPending, model.SupplyStatusRejected))

	denied := []struct {
		from, to model.SupplyStatus
	}{
		{model.SupplyStatusApproved, model.SupplyStatusRejected},
		{model.SupplyStatusApproved, model.SupplyStatusPending},
		{model.SupplyStatusRejected, model.SupplyStatusApproved},
		{model.SupplyStatusRejected, model.SupplyStatusPending},
	}
	for _, tc := range denied {
		err := TransitionSupply(tc.from, tc.to)
		require.Error(t, err, "%s -> %s", tc.from, tc.to)
		assert.Equal(t, errors.KindInvalidTransition, errors.KindOf(err))
	}
}

func TestTerminalStatesHaveNoEdges(t *testing.T) {
	targets := []model.AppointmentStatus{
		model.AppointmentStatusPending,
		model.AppointmentStatusApproved,
		model.AppointmentStatusCancelled,
		model.AppointmentStatusFinished,
	}
	for _, to := range targets {
		assert.False(t, CanTransitionAppointment(model.AppointmentStatusCancelled, to))
		assert.False(t, CanTransitionAppointment(model.AppointmentStatusFinished, to))
	}
}
