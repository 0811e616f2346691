package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	engine := newServer(t)
	w, body := do(t, engine, http.MethodGet, "/health/live", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestSessionLifecycle(t *testing.T) {
	engine := newServer(t)
	token := login(t, engine, "johndoe")

	w, body := do(t, engine, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := body["user"].(map[string]interface{})
	assert.Equal(t, "johndoe", user["username"])
	assert.Equal(t, "client", user["role"])

	w, _ = do(t, engine, http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// The same token is dead afterwards.
	w, body = do(t, engine, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, false, body["success"])
}

func TestMissingTokenRejected(t *testing.T) {
	engine := newServer(t)
	w, _ := do(t, engine, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, engine, http.MethodGet, "/api/v1/appointments/mine", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterAndBook(t *testing.T) {
	engine := newServer(t)

	w, body := do(t, engine, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "amina",
		"email":    "amina@example.com",
		"password": "secret-pass-1",
		"role":     "client",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	token := body["token"].(string)

	// A fresh client starts with an empty appointment list, not a null.
	w, body = do(t, engine, http.MethodGet, "/api/v1/appointments/mine", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	appointments, ok := body["appointments"].([]interface{})
	require.True(t, ok, w.Body.String())
	assert.Empty(t, appointments)

	// Find a doctor to book with.
	w, body = do(t, engine, http.MethodGet, "/api/v1/users/doctors", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	doctors := body["doctors"].([]interface{})
	require.NotEmpty(t, doctors)
	doctor := doctors[0].(map[string]interface{})

	w, body = do(t, engine, http.MethodPost, "/api/v1/appointments", token, map[string]interface{}{
		"facility_id": doctor["facility_id"],
		"doctor_id":   doctor["id"],
		"date_time":   time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"reason":      "First consultation",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	appointment := body["appointment"].(map[string]interface{})
	assert.Equal(t, "pending", appointment["status"])
	assert.Equal(t, "amina", appointment["client_name"])

	w, body = do(t, engine, http.MethodGet, "/api/v1/appointments/mine", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["appointments"].([]interface{}), 1)
}

func TestDoctorApprovesAppointment(t *testing.T) {
	engine := newServer(t)
	clientToken := login(t, engine, "janedoe")
	doctorToken := login(t, engine, "drsmith")

	// janedoe's seeded appointment with drsmith is pending.
	w, body := do(t, engine, http.MethodGet, "/api/v1/appointments/mine", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var pendingID string
	for _, raw := range body["appointments"].([]interface{}) {
		a := raw.(map[string]interface{})
		if a["status"] == "pending" {
			pendingID = a["id"].(string)
		}
	}
	require.NotEmpty(t, pendingID)

	// The client cannot approve it.
	w, _ = do(t, engine, http.MethodPost, "/api/v1/appointments/status", clientToken, map[string]interface{}{
		"appointment_id": pendingID,
		"status":         "approved",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, _ = do(t, engine, http.MethodPost, "/api/v1/appointments/status", doctorToken, map[string]interface{}{
		"appointment_id": pendingID,
		"status":         "approved",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Approved cannot go back to pending.
	w, body = do(t, engine, http.MethodPost, "/api/v1/appointments/status", doctorToken, map[string]interface{}{
		"appointment_id": pendingID,
		"status":         "pending",
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "invalid_transition", errBody["kind"])
}

func TestFacilityManagement(t *testing.T) {
	engine := newServer(t)
	authorityToken := login(t, engine, "ministryadmin")
	clientToken := login(t, engine, "johndoe")

	payload := map[string]interface{}{
		"name":    "Blida District Hospital",
		"type":    "hospital",
		"address": "5 Hospital Rd, Blida",
		"phone":   "025-123456",
		"region":  "Blida",
		"beds":    120,
	}

	// Only the authority can create facilities.
	w, _ := do(t, engine, http.MethodPost, "/api/v1/facilities", clientToken, payload)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body := do(t, engine, http.MethodPost, "/api/v1/facilities", authorityToken, payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	facilityID := body["facility_id"].(string)

	// Occupied beds above capacity is rejected.
	w, _ = do(t, engine, http.MethodPut, "/api/v1/facilities/"+facilityID, authorityToken, map[string]interface{}{
		"occupied_beds": 500,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Anyone logged in can browse facilities.
	w, body = do(t, engine, http.MethodGet, "/api/v1/facilities", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["facilities"].([]interface{}), 4)
}

func TestSupplyWorkflow(t *testing.T) {
	engine := newServer(t)
	adminToken := login(t, engine, "hospitaladmin1")
	authorityToken := login(t, engine, "ministryadmin")

	w, body := do(t, engine, http.MethodPost, "/api/v1/supply-requests", adminToken, map[string]interface{}{
		"item_name": "Defibrillators",
		"quantity":  2,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	requestID := body["request_id"].(string)

	// The facility admin cannot decide their own request.
	w, _ = do(t, engine, http.MethodPost, "/api/v1/supply-requests/status", adminToken, map[string]interface{}{
		"request_id": requestID,
		"status":     "approved",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, body = do(t, engine, http.MethodPost, "/api/v1/supply-requests/status", authorityToken, map[string]interface{}{
		"request_id": requestID,
		"status":     "approved",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	request := body["request"].(map[string]interface{})
	assert.Equal(t, "approved", request["status"])
	assert.NotEmpty(t, request["approved_at"])
}

func TestMedicalRecordsScoping(t *testing.T) {
	engine := newServer(t)
	clientToken := login(t, engine, "johndoe")

	w, body := do(t, engine, http.MethodGet, "/api/v1/records/client", clientToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := body["records"].([]interface{})
	require.Len(t, records, 2)

	// A client cannot write records.
	w, _ = do(t, engine, http.MethodPost, "/api/v1/records", clientToken, map[string]interface{}{
		"client_id": records[0].(map[string]interface{})["client_id"],
		"date":      "2024-08-01",
		"diagnosis": "Self-written",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPasswordResetEndToEnd(t *testing.T) {
	engine := newServer(t)

	w, body := do(t, engine, http.MethodPost, "/api/v1/auth/request-reset", "", map[string]string{
		"email": "petra@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	code := body["reset_code"].(string)
	require.NotEmpty(t, code)

	w, _ = do(t, engine, http.MethodPost, "/api/v1/auth/reset-password", "", map[string]string{
		"email":        "petra@example.com",
		"reset_code":   code,
		"new_password": "rotated-pass-1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = do(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": "petra",
		"password": "rotated-pass-1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNationalReport(t *testing.T) {
	engine := newServer(t)
	authorityToken := login(t, engine, "ministryadmin")
	adminToken := login(t, engine, "hospitaladmin1")

	w, body := do(t, engine, http.MethodGet, "/api/v1/reports/national", authorityToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	report := body["report"].(map[string]interface{})
	assert.Equal(t, float64(360), report["total_beds"])
	assert.Equal(t, float64(3), report["registered_clients"])

	w, _ = do(t, engine, http.MethodGet, "/api/v1/reports/national", adminToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestValidationErrors(t *testing.T) {
	engine := newServer(t)

	// Unknown role fails binding.
	w, body := do(t, engine, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "badrole",
		"email":    "badrole@example.com",
		"password": "secret-pass-1",
		"role":     "superuser",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])

	// Short passwords fail binding.
	w, _ = do(t, engine, http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"username": "shortpass",
		"email":    "shortpass@example.com",
		"password": "short",
		"role":     "client",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
