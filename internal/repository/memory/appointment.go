package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/errors"
)

type appointmentRepository struct {
	store *Store
}

func NewAppointmentRepository(store *Store) repository.AppointmentRepository {
	return &appointmentRepository{store: store}
}

// cloneAppointment copies a stored appointment so callers never alias
// stored state.
func cloneAppointment(a *model.Appointment) *model.Appointment {
	out := *a
	return &out
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	now := time.Now()
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	s.appointments = append(s.appointments, appointment)
	s.reportGauges()
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.appointments {
		if a.ID == id {
			return cloneAppointment(a), nil
		}
	}
	return nil, errors.NotFound("appointment")
}

// UpdateStatus writes the new status. Status is the only mutable field of a
// stored appointment; edge validation happens before this is called.
func (r *appointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.appointments {
		if a.ID == id {
			a.Status = status
			a.UpdatedAt = time.Now()
			return nil
		}
	}
	return errors.NotFound("appointment")
}

func (r *appointmentRepository) List(ctx context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.Appointment{}
	for _, a := range s.appointments {
		if filter != nil {
			if filter.ClientID != uuid.Nil && a.ClientID != filter.ClientID {
				continue
			}
			if filter.DoctorID != uuid.Nil && a.DoctorID != filter.DoctorID {
				continue
			}
			if filter.FacilityID != uuid.Nil && a.FacilityID != filter.FacilityID {
				continue
			}
			if filter.Status != "" && a.Status != filter.Status {
				continue
			}
		}
		out = append(out, cloneAppointment(a))
	}
	return out, nil
}
