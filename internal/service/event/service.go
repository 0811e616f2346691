// Package event publishes domain events. Publishing is best-effort: a
// failed publish is logged and counted, never surfaced to the caller.
package event

import (
	"context"
	"time"

	"github.com/healthnet/admin-api/pkg/logger"
	"github.com/healthnet/admin-api/pkg/messaging"
	"github.com/healthnet/admin-api/pkg/metrics"
)

// Channel is the broker channel all domain events go out on.
const Channel = "healthnet.events"

const (
	TypeUserRegistered       = "user.registered"
	TypeAppointmentCreated   = "appointment.created"
	TypeAppointmentStatus    = "appointment.status_changed"
	TypeDoctorAssigned       = "facility.doctor_assigned"
	TypeSupplyRequestCreated = "supply_request.created"
	TypeSupplyRequestStatus  = "supply_request.status_changed"
)

type Service struct {
	broker  messaging.Broker
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewService(broker messaging.Broker, logger *logger.Logger, m *metrics.Metrics) *Service {
	return &Service{broker: broker, logger: logger, metrics: m}
}

// Publish sends a domain event and swallows failures.
func (s *Service) Publish(ctx context.Context, eventType string, payload interface{}) {
	msg := messaging.Event{
		Type:       eventType,
		OccurredAt: time.Now(),
		Payload:    payload,
	}
	if err := s.broker.Publish(ctx, Channel, msg); err != nil {
		s.logger.With("event_type", eventType).Error(err, "failed to publish domain event")
		if s.metrics != nil {
			s.metrics.EventsFailed.Inc()
		}
		return
	}
	if s.metrics != nil {
		s.metrics.EventsPublished.Inc()
	}
}
