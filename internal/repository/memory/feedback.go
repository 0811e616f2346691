package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
)

type feedbackRepository struct {
	store *Store
}

func NewFeedbackRepository(store *Store) repository.FeedbackRepository {
	return &feedbackRepository{store: store}
}

func (r *feedbackRepository) Create(ctx context.Context, feedback *model.Feedback) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	if feedback.Date.IsZero() {
		feedback.Date = time.Now()
	}

	s.feedback = append(s.feedback, feedback)
	s.reportGauges()
	return nil
}

func (r *feedbackRepository) List(ctx context.Context, facilityID uuid.UUID) ([]*model.Feedback, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.Feedback{}
	for _, fb := range s.feedback {
		if facilityID != uuid.Nil && fb.FacilityID != facilityID {
			continue
		}
		out = append(out, fb)
	}
	return out, nil
}
