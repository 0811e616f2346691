// Package supply handles supply requests and facility inventory.
package supply

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/lifecycle"
	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/scope"
	"github.com/healthnet/admin-api/internal/service/event"
	"github.com/healthnet/admin-api/pkg/errors"
)

type Service struct {
	repo          repository.SupplyRequestRepository
	inventoryRepo repository.InventoryRepository
	facilityRepo  repository.FacilityRepository
	events        *event.Service
}

func NewService(repo repository.SupplyRequestRepository, inventoryRepo repository.InventoryRepository,
	facilityRepo repository.FacilityRepository, events *event.Service) *Service {
	return &Service{repo: repo, inventoryRepo: inventoryRepo, facilityRepo: facilityRepo, events: events}
}

// Create files a pending supply request for the caller's facility.
func (s *Service) Create(ctx context.Context, p *model.Principal, req *model.CreateSupplyRequestRequest) (*model.SupplyRequest, error) {
	if p.Role != model.RoleFacilityAdmin {
		return nil, errors.Unscoped("only facility administrators can request supplies")
	}
	if p.FacilityID == nil {
		return nil, errors.Unscoped("no facility affiliation for this account")
	}
	facility, err := s.facilityRepo.Get(ctx, *p.FacilityID)
	if err != nil {
		return nil, err
	}

	request := &model.SupplyRequest{
		FacilityID:   facility.ID,
		FacilityName: facility.Name,
		ItemName:     req.ItemName,
		Quantity:     req.Quantity,
		Status:       model.SupplyStatusPending,
		RequestedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, event.TypeSupplyRequestCreated, map[string]interface{}{
		"request_id":  request.ID,
		"facility_id": request.FacilityID,
	})
	return request, nil
}

// List returns supply requests under the caller's scope.
func (s *Service) List(ctx context.Context, p *model.Principal) ([]*model.SupplyRequest, error) {
	facilityID, err := scope.SupplyRequests(p)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, facilityID)
}

// UpdateStatus resolves a pending request. Only the authority decides, and
// ApprovedAt is stamped exactly when a request is approved.
func (s *Service) UpdateStatus(ctx context.Context, p *model.Principal, id uuid.UUID, target model.SupplyStatus) (*model.SupplyRequest, error) {
	if err := scope.RequireAuthority(p); err != nil {
		return nil, err
	}
	request, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := lifecycle.TransitionSupply(request.Status, target); err != nil {
		return nil, err
	}

	var approvedAt *time.Time
	if target == model.SupplyStatusApproved {
		now := time.Now().UTC()
		approvedAt = &now
	}
	if err := s.repo.UpdateStatus(ctx, id, target, approvedAt); err != nil {
		return nil, err
	}

	s.events.Publish(ctx, event.TypeSupplyRequestStatus, map[string]interface{}{
		"request_id": id,
		"status":     target,
	})
	return s.repo.Get(ctx, id)
}

// Inventory lists the caller's facility stock.
func (s *Service) Inventory(ctx context.Context, p *model.Principal) ([]*model.InventoryItem, error) {
	facilityID, err := scope.Inventory(p)
	if err != nil {
		return nil, err
	}
	return s.inventoryRepo.ListByFacility(ctx, facilityID)
}

// UpsertInventory sets the stock level for one item at the caller's facility.
func (s *Service) UpsertInventory(ctx context.Context, p *model.Principal, req *model.UpsertInventoryRequest) (*model.InventoryItem, error) {
	facilityID, err := scope.Inventory(p)
	if err != nil {
		return nil, err
	}
	return s.inventoryRepo.Upsert(ctx, facilityID, req.ItemName, req.Quantity, req.Unit)
}
