package medical

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthnet/admin-api/internal/model"
	"github.com/healthnet/admin-api/internal/repository"
	"github.com/healthnet/admin-api/internal/repository/memory"
	"github.com/healthnet/admin-api/pkg/errors"
)

type fixture struct {
	svc          *Service
	users        repository.UserRepository
	appointments repository.AppointmentRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	users := memory.NewUserRepository(store)
	facilities := memory.NewFacilityRepository(store)
	appointments := memory.NewAppointmentRepository(store)
	records := memory.NewMedicalRecordRepository(store)
	return &fixture{
		svc:          NewService(records, users, facilities, appointments),
		users:        users,
		appointments: appointments,
	}
}

func (f *fixture) user(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := f.users.GetByUsername(context.Background(), username)
	require.NoError(t, err)
	return u
}

func principalOf(u *model.User) *model.Principal {
	return &model.Principal{UserID: u.ID, Role: u.Role, FacilityID: u.FacilityID}
}

func TestAddRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	doctor := f.user(t, "drsmith")
	client := f.user(t, "janedoe")

	record, err := f.svc.AddRecord(ctx, principalOf(doctor), &model.AddMedicalRecordRequest{
		ClientID:  client.ID.String(),
		Date:      "2024-08-01",
		Diagnosis: "Seasonal allergy",
		Notes:     "Mild symptoms.",
	})
	require.NoError(t, err)

	assert.Equal(t, "janedoe", record.ClientName)
	assert.Equal(t, "drsmith", record.DoctorName)
	assert.Equal(t, "Algiers General Hospital", record.FacilityName)
	assert.Nil(t, record.AppointmentID)
}

func TestAddRecordDoctorOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	client := f.user(t, "johndoe")
	_, err := f.svc.AddRecord(ctx, principalOf(client), &model.AddMedicalRecordRequest{
		ClientID:  client.ID.String(),
		Date:      "2024-08-01",
		Diagnosis: "Self-diagnosis",
	})
	assert.Equal(t, errors.KindUnscoped, errors.KindOf(err))
}

func TestAddRecordAppointmentMustBeFinished(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	doctor := f.user(t, "drsmith")
	client := f.user(t, "janedoe")

	// janedoe's seeded appointment with drsmith is still pending.
	pending, err := f.appointments.List(ctx, &model.AppointmentFilter{
		ClientID: client.ID, DoctorID: doctor.ID, Status: model.AppointmentStatusPending,
	})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	_, err = f.svc.AddRecord(ctx, principalOf(doctor), &model.AddMedicalRecordRequest{
		ClientID:      client.ID.String(),
		AppointmentID: pending[0].ID.String(),
		Date:          "2024-08-01",
		Diagnosis:     "Too early",
	})
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))

	// Once finished, the link is accepted.
	require.NoError(t, f.appointments.UpdateStatus(ctx, pending[0].ID, model.AppointmentStatusApproved))
	require.NoError(t, f.appointments.UpdateStatus(ctx, pending[0].ID, model.AppointmentStatusFinished))

	record, err := f.svc.AddRecord(ctx, principalOf(doctor), &model.AddMedicalRecordRequest{
		ClientID:      client.ID.String(),
		AppointmentID: pending[0].ID.String(),
		Date:          "2024-08-01",
		Diagnosis:     "Follow-up complete",
	})
	require.NoError(t, err)
	require.NotNil(t, record.AppointmentID)
	assert.Equal(t, pending[0].ID, *record.AppointmentID)
}

func TestAddRecordAppointmentMustMatchParties(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	doctor := f.user(t, "drsmith")
	otherClient := f.user(t, "petra")

	// johndoe's finished appointment with drsmith belongs to another client.
	john := f.user(t, "johndoe")
	finished, err := f.appointments.List(ctx, &model.AppointmentFilter{
		ClientID: john.ID, DoctorID: doctor.ID, Status: model.AppointmentStatusFinished,
	})
	require.NoError(t, err)
	require.Len(t, finished, 1)

	_, err = f.svc.AddRecord(ctx, principalOf(doctor), &model.AddMedicalRecordRequest{
		ClientID:      otherClient.ID.String(),
		AppointmentID: finished[0].ID.String(),
		Date:          "2024-08-01",
		Diagnosis:     "Mismatch",
	})
	assert.Equal(t, errors.KindValidation, errors.KindOf(err))
}

func TestClientRecords(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	client := f.user(t, "johndoe")
	records, err := f.svc.ClientRecords(ctx, principalOf(client), uuid.Nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, client.ID, r.ClientID)
	}

	doctor := f.user(t, "drsmith")
	records, err = f.svc.ClientRecords(ctx, principalOf(doctor), uuid.Nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, doctor.ID, r.DoctorID)
	}

	records, err = f.svc.ClientRecords(ctx, principalOf(doctor), client.ID)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListClients(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	all, err := f.svc.ListClients(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// drsmith has seen johndoe and janedoe, not petra.
	doctor := f.user(t, "drsmith")
	mine, err := f.svc.ListClients(ctx, doctor.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	for _, c := range mine {
		assert.NotEqual(t, "petra", c.Username)
	}

}
