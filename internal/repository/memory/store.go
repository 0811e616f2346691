// Package memory implements the entity store. All six collections live in
// process memory, reset to seed data on every start, and share one mutex so
// multi-entity updates apply as a single critical section.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/pkg/metrics"
)

// Store is the single owner of all entity collections. Repositories are
// thin views over it; nothing reaches the collections except through them.
type Store struct {
	mu sync.RWMutex

	users        []*model.User
	facilities   []*model.Facility
	appointments []*model.Appointment
	records      []*model.MedicalRecord
	supplies     []*model.SupplyRequest
	feedback     []*model.Feedback
	inventory    []*model.InventoryItem

	usersByID      map[uuid.UUID]*model.User
	facilitiesByID map[uuid.UUID]*model.Facility

	metrics *metrics.Metrics
}

type Option func(*Store)

// WithMetrics lets the store report entity gauges.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithoutSeed starts from empty collections. Tests use this for isolation.
func WithoutSeed() Option {
	return func(s *Store) {
		s.users = nil
		s.facilities = nil
		s.appointments = nil
		s.records = nil
		s.supplies = nil
		s.feedback = nil
		s.inventory = nil
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		usersByID:      make(map[uuid.UUID]*model.User),
		facilitiesByID: make(map[uuid.UUID]*model.Facility),
	}
	seed(s)
	for _, opt := range opts {
		opt(s)
	}
	s.reindex()
	s.reportGauges()
	return s
}

func (s *Store) reindex() {
	s.usersByID = make(map[uuid.UUID]*model.User, len(s.users))
	for _, u := range s.users {
		s.usersByID[u.ID] = u
	}
	s.facilitiesByID = make(map[uuid.UUID]*model.Facility, len(s.facilities))
	for _, f := range s.facilities {
		s.facilitiesByID[f.ID] = f
	}
}

func (s *Store) reportGauges() {
	if s.metrics == nil {
		return
	}
	s.metrics.EntityTotal.WithLabelValues("users").Set(float64(len(s.users)))
	s.metrics.EntityTotal.WithLabelValues("facilities").Set(float64(len(s.facilities)))
	s.metrics.EntityTotal.WithLabelValues("appointments").Set(float64(len(s.appointments)))
	s.metrics.EntityTotal.WithLabelValues("medical_records").Set(float64(len(s.records)))
	s.metrics.EntityTotal.WithLabelValues("supply_requests").Set(float64(len(s.supplies)))
	s.metrics.EntityTotal.WithLabelValues("feedback").Set(float64(len(s.feedback)))
}

// doctorsOf materializes the facility's doctor view. Callers must hold at
// least a read lock.
func (s *Store) doctorsOf(facilityID uuid.UUID) []*model.User {
	doctors := []*model.User{}
	for _, u := range s.users {
		if u.Role == model.RoleDoctor && u.FacilityID != nil && *u.FacilityID == facilityID {
			doctors = append(doctors, cloneUser(u))
		}
	}
	return doctors
}

// facilityView returns a copy of the facility with its doctor view filled
// in, so callers never alias stored state.
func (s *Store) facilityView(f *model.Facility) *model.Facility {
	view := *f
	view.Doctors = s.doctorsOf(f.ID)
	return &view
}
