package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/errors"
)

type facilityRepository struct {
	store *Store
}

func NewFacilityRepository(store *Store) repository.FacilityRepository {
	return &facilityRepository{store: store}
}

func (r *facilityRepository) Create(ctx context.Context, facility *model.Facility) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if facility.ID == uuid.Nil {
		facility.ID = uuid.New()
	}
	now := time.Now()
	facility.CreatedAt = now
	facility.UpdatedAt = now
	facility.Doctors = nil

	s.facilities = append(s.facilities, facility)
	s.facilitiesByID[facility.ID] = facility
	s.reportGauges()
	return nil
}

func (r *facilityRepository) Get(ctx context.Context, id uuid.UUID) (*model.Facility, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	f, ok := s.facilitiesByID[id]
	if !ok {
		return nil, errors.NotFound("facility")
	}
	return s.facilityView(f), nil
}

func (r *facilityRepository) Update(ctx context.Context, facility *model.Facility) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.facilitiesByID[facility.ID]
	if !ok {
		return errors.NotFound("facility")
	}
	facility.UpdatedAt = time.Now()
	facility.Doctors = nil
	*stored = *facility
	return nil
}

func (r *facilityRepository) List(ctx context.Context) ([]*model.Facility, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Facility, 0, len(s.facilities))
	for _, f := range s.facilities {
		out = append(out, s.facilityView(f))
	}
	return out, nil
}

// AssignDoctor clears any previous affiliation and sets the new one under a
// single write lock. The doctor view is derived from user state, so the
// facility membership can never disagree with it.
func (r *facilityRepository) AssignDoctor(ctx context.Context, facilityID, doctorID uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.facilitiesByID[facilityID]; !ok {
		return errors.NotFound("facility")
	}
	doctor, ok := s.usersByID[doctorID]
	if !ok || doctor.Role != model.RoleDoctor {
		return errors.NotFound("doctor")
	}

	affiliation := facilityID
	doctor.FacilityID = &affiliation
	doctor.UpdatedAt = time.Now()
	return nil
}
