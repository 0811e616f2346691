// Package appointment books visits and walks them through their lifecycle.
package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/lifecycle"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/scope"
	"github.com/healthnet/admin-api/internal/service/event"
	"github.com/healthnet/admin-api/pkg/errors"
)

type Service struct {
	repo         repository.AppointmentRepository
	userRepo     repository.UserRepository
	facilityRepo repository.FacilityRepository
	events       *event.Service
}

func NewService(repo repository.AppointmentRepository, userRepo repository.UserRepository,
	facilityRepo repository.FacilityRepository, events *event.Service) *Service {
	return &Service{repo: repo, userRepo: userRepo, facilityRepo: facilityRepo, events: events}
}

// Create books a pending appointment. Display names for the client, doctor,
// and facility are resolved once here and stored on the appointment; they
// are deliberately not kept in sync with later renames.
//
// There is no schedule-collision check: overlapping bookings for the same
// doctor are allowed, matching the platform's established behavior.
func (s *Service) Create(ctx context.Context, p *model.Principal, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	clientID, err := s.resolveClient(ctx, p, req.ClientID)
	if err != nil {
		return nil, err
	}

	client, err := s.userRepo.Get(ctx, clientID)
	if err != nil || client.Role != model.RoleClient {
		return nil, errors.NotFound("client")
	}

	doctorID, _ := uuid.Parse(req.DoctorID)
	doctor, err := s.userRepo.Get(ctx, doctorID)
	if err != nil || doctor.Role != model.RoleDoctor {
		return nil, errors.NotFound("doctor")
	}

	facilityID, _ := uuid.Parse(req.FacilityID)
	facility, err := s.facilityRepo.Get(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	appointment := &model.Appointment{
		ClientID:     client.ID,
		ClientName:   client.Username,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Username,
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		DateTime:     req.DateTime,
		Reason:       req.Reason,
		Status:       model.AppointmentStatusPending,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, event.TypeAppointmentCreated, map[string]interface{}{
		"appointment_id": appointment.ID,
		"facility_id":    appointment.FacilityID,
	})
	return appointment, nil
}

// resolveClient decides whose appointment this is. Clients always book for
// themselves; a caller-supplied client id that differs from the session is
// rejected. Staff roles must name the client explicitly.
func (s *Service) resolveClient(ctx context.Context, p *model.Principal, requested string) (uuid.UUID, error) {
	if p.Role == model.RoleClient {
		if requested != "" {
			id, err := uuid.Parse(requested)
			if err != nil || id != p.UserID {
				return uuid.Nil, errors.Unscoped("cannot book an appointment for another client")
			}
		}
		return p.UserID, nil
	}
	if requested == "" {
		return uuid.Nil, errors.Validation("client_id is required")
	}
	id, err := uuid.Parse(requested)
	if err != nil {
		return uuid.Nil, errors.Validation("client_id must be a valid id")
	}
	return id, nil
}

// UpdateStatus moves an appointment along its state machine. Only the
// appointment's own doctor may act, and only along the allowed edges.
func (s *Service) UpdateStatus(ctx context.Context, p *model.Principal, id uuid.UUID, target model.AppointmentStatus) error {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	if p.Role != model.RoleDoctor || appointment.DoctorID != p.UserID {
		return errors.Unscoped("only the assigned doctor can update this appointment")
	}
	if err := lifecycle.TransitionAppointment(appointment.Status, target); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, target); err != nil {
		return err
	}

	s.events.Publish(ctx, event.TypeAppointmentStatus, map[string]interface{}{
		"appointment_id": id,
		"status":         target,
	})
	return nil
}

// Mine lists the caller's own appointments.
func (s *Service) Mine(ctx context.Context, p *model.Principal) ([]*model.Appointment, error) {
	filter, err := scope.MyAppointments(p)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// ForFacility lists a facility's appointments under the caller's scope.
func (s *Service) ForFacility(ctx context.Context, p *model.Principal, facilityID uuid.UUID) ([]*model.Appointment, error) {
	filter, err := scope.FacilityAppointments(p, facilityID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// ListDoctors lists doctors, optionally narrowed to one facility.
func (s *Service) ListDoctors(ctx context.Context, facilityID uuid.UUID) ([]*model.User, error) {
	return s.userRepo.List(ctx, &model.UserFilter{Role: model.RoleDoctor, FacilityID: facilityID})
}
