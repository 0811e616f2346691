// Package report computes network-wide aggregates for the authority.
package report

import (
	"context"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/scope"
)

type Service struct {
	facilityRepo    repository.FacilityRepository
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	supplyRepo      repository.SupplyRequestRepository
	feedbackRepo    repository.FeedbackRepository
}

func NewService(facilityRepo repository.FacilityRepository, userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository, supplyRepo repository.SupplyRequestRepository,
	feedbackRepo repository.FeedbackRepository) *Service {
	return &Service{
		facilityRepo:    facilityRepo,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		supplyRepo:      supplyRepo,
		feedbackRepo:    feedbackRepo,
	}
}

// NationalOverview aggregates the current network state. The numbers are a
// consistent-enough snapshot for dashboards; each collection is read once.
func (s *Service) NationalOverview(ctx context.Context, p *model.Principal) (*model.NationalOverview, error) {
	if err := scope.RequireAuthority(p); err != nil {
		return nil, err
	}

	overview := &model.NationalOverview{
		FacilitiesByType:     make(map[model.FacilityType]int),
		AppointmentsByStatus: make(map[model.AppointmentStatus]int),
	}

	facilities, err := s.facilityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range facilities {
		overview.FacilitiesByType[f.Type]++
		overview.TotalBeds += f.Beds
		overview.OccupiedBeds += f.OccupiedBeds
	}
	if overview.TotalBeds > 0 {
		overview.OccupancyRate = float64(overview.OccupiedBeds) / float64(overview.TotalBeds)
	}

	appointments, err := s.appointmentRepo.List(ctx, &model.AppointmentFilter{})
	if err != nil {
		return nil, err
	}
	for _, a := range appointments {
		overview.AppointmentsByStatus[a.Status]++
	}

	supplies, err := s.supplyRepo.List(ctx, uuid.Nil)
	if err != nil {
		return nil, err
	}
	for _, r := range supplies {
		if r.Status == model.SupplyStatusPending {
			overview.PendingSupplyRequests++
		}
	}

	feedbacks, err := s.feedbackRepo.List(ctx, uuid.Nil)
	if err != nil {
		return nil, err
	}
	if len(feedbacks) > 0 {
		var sum int
		for _, f := range feedbacks {
			sum += f.Rating
		}
		overview.AverageRating = float64(sum) / float64(len(feedbacks))
	}

	clients, err := s.userRepo.List(ctx, &model.UserFilter{Role: model.RoleClient})
	if err != nil {
		return nil, err
	}
	overview.RegisteredClients = len(clients)

	return overview, nil
}
