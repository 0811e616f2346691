package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
)

// All repository interfaces in one file.
type (
	UserRepository interface {
		Create(ctx context.Context, user *model.User) error
		Get(ctx context.Context, id uuid.UUID) (*model.User, error)
		GetByUsername(ctx context.Context, username string) (*model.User, error)
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		Update(ctx context.Context, user *model.User) error
		List(ctx context.Context, filter *model.UserFilter) ([]*model.User, error)
	}

	FacilityRepository interface {
		Create(ctx context.Context, facility *model.Facility) error
		Get(ctx context.Context, id uuid.UUID) (*model.Facility, error)
		Update(ctx context.Context, facility *model.Facility) error
		List(ctx context.Context) ([]*model.Facility, error)
		// AssignDoctor moves a doctor's affiliation to the given facility as
		// one atomic step; it is never observed half-done.
		AssignDoctor(ctx context.Context, facilityID, doctorID uuid.UUID) error
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
		List(ctx context.Context, filter *model.AppointmentFilter) ([]*model.Appointment, error)
	}

	MedicalRecordRepository interface {
		Create(ctx context.Context, record *model.MedicalRecord) error
		List(ctx context.Context, filter *model.RecordFilter) ([]*model.MedicalRecord, error)
	}

	SupplyRequestRepository interface {
		Create(ctx context.Context, request *model.SupplyRequest) error
		Get(ctx context.Context, id uuid.UUID) (*model.SupplyRequest, error)
		UpdateStatus(ctx context.Context, id uuid.UUID, status model.SupplyStatus, approvedAt *time.Time) error
		List(ctx context.Context, facilityID uuid.UUID) ([]*model.SupplyRequest, error)
	}

	FeedbackRepository interface {
		Create(ctx context.Context, feedback *model.Feedback) error
		List(ctx context.Context, facilityID uuid.UUID) ([]*model.Feedback, error)
	}

	InventoryRepository interface {
		ListByFacility(ctx context.Context, facilityID uuid.UUID) ([]*model.InventoryItem, error)
		Upsert(ctx context.Context, facilityID uuid.UUID, itemName string, quantity int, unit string) (*model.InventoryItem, error)
	}

	// TokenRepository holds short-lived auth artifacts: password reset codes
	// and revoked session tokens.
	TokenRepository interface {
		StoreResetCode(ctx context.Context, email, code string, ttl time.Duration) error
		ValidateResetCode(ctx context.Context, email, code string) error
		InvalidateResetCode(ctx context.Context, email string) error
		RevokeToken(ctx context.Context, token string, ttl time.Duration) error
		IsRevoked(ctx context.Context, token string) bool
	}
)
