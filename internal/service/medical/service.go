// Package medical manages client medical records.
package medical

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/scope"
	"github.com/healthnet/admin-api/pkg/errors"
)

type Service struct {
	repo            repository.MedicalRecordRepository
	userRepo        repository.UserRepository
	facilityRepo    repository.FacilityRepository
	appointmentRepo repository.AppointmentRepository
}

func NewService(repo repository.MedicalRecordRepository, userRepo repository.UserRepository,
	facilityRepo repository.FacilityRepository, appointmentRepo repository.AppointmentRepository) *Service {
	return &Service{repo: repo, userRepo: userRepo, facilityRepo: facilityRepo, appointmentRepo: appointmentRepo}
}

// AddRecord writes a record authored by the calling doctor. The record's
// facility is the doctor's current affiliation. A linked appointment must
// belong to the same doctor and client and must already be finished.
func (s *Service) AddRecord(ctx context.Context, p *model.Principal, req *model.AddMedicalRecordRequest) (*model.MedicalRecord, error) {
	if p.Role != model.RoleDoctor {
		return nil, errors.Unscoped("only doctors can add medical records")
	}
	doctor, err := s.userRepo.Get(ctx, p.UserID)
	if err != nil {
		return nil, err
	}
	if doctor.FacilityID == nil {
		return nil, errors.Unscoped("doctor has no facility affiliation")
	}
	facility, err := s.facilityRepo.Get(ctx, *doctor.FacilityID)
	if err != nil {
		return nil, err
	}

	clientID, _ := uuid.Parse(req.ClientID)
	client, err := s.userRepo.Get(ctx, clientID)
	if err != nil || client.Role != model.RoleClient {
		return nil, errors.NotFound("client")
	}

	record := &model.MedicalRecord{
		ClientID:     client.ID,
		ClientName:   client.Username,
		DoctorID:     doctor.ID,
		DoctorName:   doctor.Username,
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		Date:         req.Date,
		Diagnosis:    req.Diagnosis,
		Notes:        req.Notes,
		Prescription: req.Prescription,
	}

	if req.AppointmentID != "" {
		appointmentID, _ := uuid.Parse(req.AppointmentID)
		appointment, err := s.appointmentRepo.Get(ctx, appointmentID)
		if err != nil {
			return nil, err
		}
		if appointment.DoctorID != doctor.ID || appointment.ClientID != client.ID {
			return nil, errors.Validation("appointment does not match doctor and client")
		}
		if appointment.Status != model.AppointmentStatusFinished {
			return nil, errors.Validation("records can only reference finished appointments")
		}
		record.AppointmentID = &appointment.ID
	}

	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ClientRecords lists records under the caller's scope, optionally narrowed
// to one client.
func (s *Service) ClientRecords(ctx context.Context, p *model.Principal, clientID uuid.UUID) ([]*model.MedicalRecord, error) {
	filter, err := scope.Records(p, clientID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, filter)
}

// ListClients lists registered clients. When doctorID is set the list is
// narrowed to clients with at least one appointment with that doctor.
func (s *Service) ListClients(ctx context.Context, doctorID uuid.UUID) ([]*model.User, error) {
	clients, err := s.userRepo.List(ctx, &model.UserFilter{Role: model.RoleClient})
	if err != nil {
		return nil, err
	}
	if doctorID == uuid.Nil {
		return clients, nil
	}

	appointments, err := s.appointmentRepo.List(ctx, &model.AppointmentFilter{DoctorID: doctorID})
	if err != nil {
		return nil, err
	}
	seen := make(map[uuid.UUID]bool, len(appointments))
	for _, a := range appointments {
		seen[a.ClientID] = true
	}

	var out []*model.User
	for _, c := range clients {
		if seen[c.ID] {
			out = append(out, c)
		}
	}
	return out, nil
}
