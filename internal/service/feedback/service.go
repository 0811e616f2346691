// Package feedback collects client ratings for facilities.
package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/scope"
	"github.com/healthnet/admin-api/pkg/errors"
)

type Service struct {
	repo         repository.FeedbackRepository
	userRepo     repository.UserRepository
	facilityRepo repository.FacilityRepository
}

func NewService(repo repository.FeedbackRepository, userRepo repository.UserRepository,
	facilityRepo repository.FacilityRepository) *Service {
	return &Service{repo: repo, userRepo: userRepo, facilityRepo: facilityRepo}
}

// Submit records a client's rating of a facility. Entries are append-only.
func (s *Service) Submit(ctx context.Context, p *model.Principal, req *model.SubmitFeedbackRequest) (*model.Feedback, error) {
	if p.Role != model.RoleClient {
		return nil, errors.Unscoped("only clients can submit feedback")
	}
	client, err := s.userRepo.Get(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	facilityID, _ := uuid.Parse(req.FacilityID)
	facility, err := s.facilityRepo.Get(ctx, facilityID)
	if err != nil {
		return nil, err
	}

	feedback := &model.Feedback{
		ClientName:   client.Username,
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		Rating:       req.Rating,
		Comment:      req.Comment,
		Date:         time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

// ForFacility lists one facility's feedback under the caller's scope.
func (s *Service) ForFacility(ctx context.Context, p *model.Principal, facilityID uuid.UUID) ([]*model.Feedback, error) {
	scoped, err := scope.FacilityFeedback(p, facilityID)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, scoped)
}

// National lists feedback across all facilities. Authority only.
func (s *Service) National(ctx context.Context, p *model.Principal) ([]*model.Feedback, error) {
	if err := scope.RequireAuthority(p); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, uuid.Nil)
}
