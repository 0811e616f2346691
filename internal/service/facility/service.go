// Package facility maintains facilities and the doctor affiliation that
// ties the rest of the data model together.
package facility

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/service/event"
	"github.com/healthnet/admin-api/pkg/errors"
)

type Service struct {
	facilityRepo repository.FacilityRepository
	userRepo     repository.UserRepository
	events       *event.Service
}

func NewService(facilityRepo repository.FacilityRepository, userRepo repository.UserRepository, events *event.Service) *Service {
	return &Service{facilityRepo: facilityRepo, userRepo: userRepo, events: events}
}

// Create validates and stores a new facility. Occupied beds default to 0
// and are never derived from anything else.
func (s *Service) Create(ctx context.Context, req *model.CreateFacilityRequest) (*model.Facility, error) {
	facility := &model.Facility{
		Name:    req.Name,
		Type:    model.FacilityType(req.Type),
		Address: req.Address,
		Phone:   req.Phone,
		Region:  req.Region,
		Beds:    req.Beds,
	}
	if req.OccupiedBeds != nil {
		facility.OccupiedBeds = *req.OccupiedBeds
	}
	if facility.OccupiedBeds > facility.Beds {
		return nil, errors.Validation("occupied beds cannot exceed total beds")
	}

	if err := s.facilityRepo.Create(ctx, facility); err != nil {
		return nil, err
	}
	return facility, nil
}

// Update applies the provided fields to an existing facility.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *model.UpdateFacilityRequest) (*model.Facility, error) {
	facility, err := s.facilityRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.Type != nil {
		facility.Type = model.FacilityType(*req.Type)
	}
	if req.Address != nil {
		facility.Address = *req.Address
	}
	if req.Phone != nil {
		facility.Phone = *req.Phone
	}
	if req.Region != nil {
		facility.Region = *req.Region
	}
	if req.Beds != nil {
		facility.Beds = *req.Beds
	}
	if req.OccupiedBeds != nil {
		facility.OccupiedBeds = *req.OccupiedBeds
	}
	if facility.OccupiedBeds > facility.Beds {
		return nil, errors.Validation("occupied beds cannot exceed total beds")
	}

	if err := s.facilityRepo.Update(ctx, facility); err != nil {
		return nil, err
	}
	return s.facilityRepo.Get(ctx, id)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*model.Facility, error) {
	return s.facilityRepo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Facility, error) {
	return s.facilityRepo.List(ctx)
}

// AssignDoctor moves a doctor to a facility. The store applies the change
// atomically; a doctor ends up affiliated to exactly one facility no matter
// how often this is called.
func (s *Service) AssignDoctor(ctx context.Context, facilityID, doctorID uuid.UUID) error {
	if err := s.facilityRepo.AssignDoctor(ctx, facilityID, doctorID); err != nil {
		return fmt.Errorf("failed to assign doctor: %w", err)
	}

	s.events.Publish(ctx, event.TypeDoctorAssigned, map[string]interface{}{
		"facility_id": facilityID,
		"doctor_id":   doctorID,
	})
	return nil
}

// MyFacility resolves the caller's own facility.
func (s *Service) MyFacility(ctx context.Context, p *model.Principal) (*model.Facility, error) {
	if p.FacilityID == nil {
		return nil, errors.Unscoped("no facility affiliation for this account")
	}
	return s.facilityRepo.Get(ctx, *p.FacilityID)
}
