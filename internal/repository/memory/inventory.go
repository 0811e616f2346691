package memory

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
)

type inventoryRepository struct {
	store *Store
}

func NewInventoryRepository(store *Store) repository.InventoryRepository {
	return &inventoryRepository{store: store}
}

func (r *inventoryRepository) ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*model.InventoryItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.InventoryItem{}
	for _, item := range s.inventory {
		if item.FacilityID == facilityID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *inventoryRepository) Upsert(ctx context.Context, facilityID uuid.UUID, itemName string, quantity int, unit string) (*model.InventoryItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.inventory {
		if item.FacilityID == facilityID && strings.EqualFold(item.ItemName, itemName) {
			item.Quantity = quantity
			if unit != "" {
				item.Unit = unit
			}
			item.UpdatedAt = time.Now()
			return item, nil
		}
	}

	item := &model.InventoryItem{
		ID:         uuid.New(),
		FacilityID: facilityID,
		ItemName:   itemName,
		Quantity:   quantity,
		Unit:       unit,
		UpdatedAt:  time.Now(),
	}
	s.inventory = append(s.inventory, item)
	return item, nil
}
