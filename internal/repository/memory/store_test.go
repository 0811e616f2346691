package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/pkg/errors"
)

type testRepos struct {
	users        repository.UserRepository
	facilities   repository.FacilityRepository
	appointments repository.AppointmentRepository
	records      repository.MedicalRecordRepository
	supplies     repository.SupplyRequestRepository
	feedback     repository.FeedbackRepository
	inventory    repository.InventoryRepository
}

func seededRepos(t *testing.T) (*Store, testRepos) {
	t.Helper()
	store := NewStore()
	return store, testRepos{
		users:        NewUserRepository(store),
		facilities:   NewFacilityRepository(store),
		appointments: NewAppointmentRepository(store),
		records:      NewMedicalRecordRepository(store),
		supplies:     NewSupplyRequestRepository(store),
		feedback:     NewFeedbackRepository(store),
		inventory:    NewInventoryRepository(store),
	}
}

func TestSeedData(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	users, err := repos.users.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, users, 9)

	facilities, err := repos.facilities.List(ctx)
	require.NoError(t, err)
	require.Len(t, facilities, 3)

	appointments, err := repos.appointments.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, appointments, 5)

	records, err := repos.records.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	supplies, err := repos.supplies.List(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, supplies, 4)

	feedback, err := repos.feedback.List(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, feedback, 5)
}

func TestSeedDoctorViews(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	facilities, err := repos.facilities.List(ctx)
	require.NoError(t, err)

	byName := map[string]*model.Facility{}
	for _, f := range facilities {
		byName[f.Name] = f
	}

	assert.Len(t, byName["Algiers General Hospital"].Doctors, 2)
	assert.Len(t, byName["Oran City Clinic"].Doctors, 1)
	assert.Empty(t, byName["Constantine Health Center"].Doctors)
}

func TestAssignDoctorMovesAffiliation(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	doctor, err := repos.users.GetByUsername(ctx, "drsmith")
	require.NoError(t, err)

	facilities, err := repos.facilities.List(ctx)
	require.NoError(t, err)
	var oran, constantine *model.Facility
	for _, f := range facilities {
		switch f.Name {
		case "Oran City Clinic":
			oran = f
		case "Constantine Health Center":
			constantine = f
		}
	}

	require.NoError(t, repos.facilities.AssignDoctor(ctx, constantine.ID, doctor.ID))

	// The doctor appears in exactly one facility's view afterwards.
	facilities, err = repos.facilities.List(ctx)
	require.NoError(t, err)
	var appearances int
	for _, f := range facilities {
		for _, d := range f.Doctors {
			if d.ID == doctor.ID {
				appearances++
				assert.Equal(t, constantine.ID, f.ID)
			}
		}
	}
	assert.Equal(t, 1, appearances)

	// Reassigning again is just another move.
	require.NoError(t, repos.facilities.AssignDoctor(ctx, oran.ID, doctor.ID))
	updated, err := repos.users.Get(ctx, doctor.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.FacilityID)
	assert.Equal(t, oran.ID, *updated.FacilityID)
}

func TestAssignDoctorSameFacilityIsIdempotent(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	doctor, err := repos.users.GetByUsername(ctx, "drsmith")
	require.NoError(t, err)
	require.NotNil(t, doctor.FacilityID)
	home := *doctor.FacilityID

	require.NoError(t, repos.facilities.AssignDoctor(ctx, home, doctor.ID))
	require.NoError(t, repos.facilities.AssignDoctor(ctx, home, doctor.ID))

	// Still exactly one appearance, in the same facility.
	facilities, err := repos.facilities.List(ctx)
	require.NoError(t, err)
	var appearances int
	for _, f := range facilities {
		for _, d := range f.Doctors {
			if d.ID == doctor.ID {
				appearances++
				assert.Equal(t, home, f.ID)
			}
		}
	}
	assert.Equal(t, 1, appearances)

	updated, err := repos.users.Get(ctx, doctor.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.FacilityID)
	assert.Equal(t, home, *updated.FacilityID)
}

func TestReadsNeverAliasStoredState(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	// Scribbling on a returned user must not leak into the store.
	user, err := repos.users.GetByUsername(ctx, "johndoe")
	require.NoError(t, err)
	originalHash := user.PasswordHash
	user.Username = "scribbled"
	user.PasswordHash = "scribbled"

	again, err := repos.users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "johndoe", again.Username)
	assert.Equal(t, originalHash, again.PasswordHash)

	// Same contract for listed users and their facility pointer.
	users, err := repos.users.List(ctx, &model.UserFilter{Role: model.RoleDoctor})
	require.NoError(t, err)
	require.NotEmpty(t, users)
	require.NotNil(t, users[0].FacilityID)
	*users[0].FacilityID = uuid.New()
	reread, err := repos.users.Get(ctx, users[0].ID)
	require.NoError(t, err)
	require.NotNil(t, reread.FacilityID)
	assert.NotEqual(t, *users[0].FacilityID, *reread.FacilityID)

	// And for appointments.
	appointments, err := repos.appointments.List(ctx, nil)
	require.NoError(t, err)
	require.NotEmpty(t, appointments)
	originalReason := appointments[0].Reason
	appointments[0].Reason = "scribbled"
	appointments[0].Status = model.AppointmentStatus("scribbled")

	stored, err := repos.appointments.Get(ctx, appointments[0].ID)
	require.NoError(t, err)
	assert.Equal(t, originalReason, stored.Reason)
	assert.NotEqual(t, model.AppointmentStatus("scribbled"), stored.Status)
}

func TestAssignDoctorRejectsNonDoctors(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	client, err := repos.users.GetByUsername(ctx, "johndoe")
	require.NoError(t, err)
	facilities, err := repos.facilities.List(ctx)
	require.NoError(t, err)

	err = repos.facilities.AssignDoctor(ctx, facilities[0].ID, client.ID)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))

	err = repos.facilities.AssignDoctor(ctx, uuid.New(), client.ID)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(err))
}

func TestUserCreateConflicts(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	err := repos.users.Create(ctx, &model.User{
		Username: "JOHNDOE",
		Email:    "fresh@example.com",
		Role:     model.RoleClient,
	})
	assert.Equal(t, errors.KindConflict, errors.KindOf(err), "usernames are case-insensitive")

	err = repos.users.Create(ctx, &model.User{
		Username: "freshuser",
		Email:    "John.Doe@example.com",
		Role:     model.RoleClient,
	})
	assert.Equal(t, errors.KindConflict, errors.KindOf(err), "emails are case-insensitive")

	require.NoError(t, repos.users.Create(ctx, &model.User{
		Username: "freshuser",
		Email:    "fresh@example.com",
		Role:     model.RoleClient,
	}))
}

func TestAppointmentStatusUpdateKeepsOtherFields(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	appointments, err := repos.appointments.List(ctx, &model.AppointmentFilter{Status: model.AppointmentStatusPending})
	require.NoError(t, err)
	require.NotEmpty(t, appointments)
	target := appointments[0]

	require.NoError(t, repos.appointments.UpdateStatus(ctx, target.ID, model.AppointmentStatusApproved))

	after, err := repos.appointments.List(ctx, &model.AppointmentFilter{ClientID: target.ClientID})
	require.NoError(t, err)
	var found *model.Appointment
	for _, a := range after {
		if a.ID == target.ID {
			found = a
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, model.AppointmentStatusApproved, found.Status)
	assert.Equal(t, target.Reason, found.Reason)
	assert.Equal(t, target.ClientName, found.ClientName)
}

func TestInventoryUpsert(t *testing.T) {
	ctx := context.Background()
	_, repos := seededRepos(t)

	facilities, err := repos.facilities.List(ctx)
	require.NoError(t, err)
	var algiers *model.Facility
	for _, f := range facilities {
		if f.Name == "Algiers General Hospital" {
			algiers = f
		}
	}
	require.NotNil(t, algiers)

	before, err := repos.inventory.ListByFacility(ctx, algiers.ID)
	require.NoError(t, err)

	// Same item name updates in place, case-insensitively.
	item, err := repos.inventory.Upsert(ctx, algiers.ID, "surgical masks", 900, "")
	require.NoError(t, err)
	assert.Equal(t, 900, item.Quantity)
	assert.Equal(t, "pcs", item.Unit)

	after, err := repos.inventory.ListByFacility(ctx, algiers.ID)
	require.NoError(t, err)
	assert.Len(t, after, len(before))

	// A new item name appends.
	_, err = repos.inventory.Upsert(ctx, algiers.ID, "Syringes", 500, "pcs")
	require.NoError(t, err)
	after, err = repos.inventory.ListByFacility(ctx, algiers.ID)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestWithoutSeedStartsEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewStore(WithoutSeed())
	users, err := NewUserRepository(store).List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestTokenRepository(t *testing.T) {
	ctx := context.Background()
	tokens := NewTokenRepository()

	require.NoError(t, tokens.StoreResetCode(ctx, "a@example.com", "code-1", time.Minute))
	assert.NoError(t, tokens.ValidateResetCode(ctx, "a@example.com", "code-1"))
	assert.Error(t, tokens.ValidateResetCode(ctx, "a@example.com", "wrong"))
	assert.Error(t, tokens.ValidateResetCode(ctx, "other@example.com", "code-1"))

	require.NoError(t, tokens.InvalidateResetCode(ctx, "a@example.com"))
	assert.Error(t, tokens.ValidateResetCode(ctx, "a@example.com", "code-1"))

	assert.False(t, tokens.IsRevoked(ctx, "tok"))
	require.NoError(t, tokens.RevokeToken(ctx, "tok", time.Minute))
	assert.True(t, tokens.IsRevoked(ctx, "tok"))
}
