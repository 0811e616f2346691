package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
)

type medicalRecordRepository struct {
	store *Store
}

func NewMedicalRecordRepository(store *Store) repository.MedicalRecordRepository {
	return &medicalRecordRepository{store: store}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now

	s.records = append(s.records, record)
	s.reportGauges()
	return nil
}

func (r *medicalRecordRepository) List(ctx context.Context, filter *model.RecordFilter) ([]*model.MedicalRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []*model.MedicalRecord{}
	for _, rec := range s.records {
		if filter != nil {
			if filter.ClientID != uuid.Nil && rec.ClientID != filter.ClientID {
				continue
			}
			if filter.DoctorID != uuid.Nil && rec.DoctorID != filter.DoctorID {
				continue
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
