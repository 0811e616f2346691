package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/errors"
)

type supplyRequestRepository struct {
	store *Store
}

func NewSupplyRequestRepository(store *Store) repository.SupplyRequestRepository {
	return &supplyRequestRepository{store: store}
}

func (r *supplyRequestRepository) Create(ctx context.Context, request *model.SupplyRequest) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}
	if request.RequestedAt.IsZero() {
		request.RequestedAt = time.Now()
	}

	s.supplies = append(s.supplies, request)
	s.reportGauges()
	return nil
}

func (r *supplyRequestRepository) Get(ctx context.Context, id uuid.UUID) (*model.SupplyRequest, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, req := range s.supplies {
		if req.ID == id {
			return req, nil
		}
	}
	return nil, errors.NotFound("supply request")
}

func (r *supplyRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.SupplyStatus, approvedAt *time.Time) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.supplies {
		if req.ID == id {
			req.Status = status
			if approvedAt != nil {
				req.ApprovedAt = approvedAt
			}
			return nil
		}
	}
	return errors.NotFound("supply request")
}

func (r *supplyRequestRepository) List(ctx context.Context, facilityID uuid.UUID) ([]*model.SupplyRequest, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.SupplyRequest{}
	for _, req := range s.supplies {
		if facilityID != uuid.Nil && req.FacilityID != facilityID {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}
