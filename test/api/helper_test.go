package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthnet/admin-api/internal/email"
	appointmenthandler "github.com/healthnet/admin-api/internal/handler/appointment"
	authhandler "github.com/healthnet/admin-api/internal/handler/auth"
	facilityhandler "github.com/healthnet/admin-api/internal/handler/facility"
	feedbackhandler "github.com/healthnet/admin-api/internal/handler/feedback"
	medicalhandler "github.com/healthnet/admin-api/internal/handler/medical"
	reporthandler "github.com/healthnet/admin-api/internal/handler/report"
	supplyhandler "github.com/healthnet/admin-api/internal/handler/supply"
	"github.com/healthnet/admin-api/internal/repository/memory"
	"github.com/healthnet/admin-api/internal/router"
	appointmentsvc "github.com/healthnet/admin-api/internal/service/appointment"
	authsvc "github.com/healthnet/admin-api/internal/service/auth"
	"github.com/healthnet/admin-api/internal/service/event"
	facilitysvc "github.com/healthnet/admin-api/internal/service/facility"
	feedbacksvc "github.com/healthnet/admin-api/internal/service/feedback"
	medicalsvc "github.com/healthnet/admin-api/internal/service/medical"
	reportsvc "github.com/healthnet/admin-api/internal/service/report"
	supplysvc "github.com/healthnet/admin-api/internal/service/supply"
	"github.com/healthnet/admin-api/pkg/auth"
	"github.com/healthnet/admin-api/pkg/logger"
	"github.com/healthnet/admin-api/pkg/messaging"
	"github.com/healthnet/admin-api/pkg/metrics"
	"github.com/healthnet/admin-api/pkg/security"
	"github.com/healthnet/admin-api/pkg/validator"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validator.Register(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newServer wires a full API over a fresh seeded store.
func newServer(t *testing.T) *gin.Engine {
	t.Helper()

	log := logger.New(&logger.Config{Level: "error", Output: io.Discard})
	m := metrics.NewWith(prometheus.NewRegistry(), "healthnet")

	store := memory.NewStore(memory.WithMetrics(m))
	users := memory.NewUserRepository(store)
	facilities := memory.NewFacilityRepository(store)
	appointments := memory.NewAppointmentRepository(store)
	records := memory.NewMedicalRecordRepository(store)
	supplies := memory.NewSupplyRequestRepository(store)
	feedbacks := memory.NewFeedbackRepository(store)
	inventory := memory.NewInventoryRepository(store)
	tokens := memory.NewTokenRepository()

	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	events := event.NewService(messaging.NewNoopBroker(), log, m)

	authService := authsvc.NewService(users, facilities, tokens, jwtSvc, hasher,
		email.NewLogService(log), events, log, authsvc.Config{ExposeResetCode: true})
	authHandler := authhandler.NewHandler(authService)

	r := router.New(router.Config{
		Mode: gin.TestMode,
	}, log, m, jwtSvc, tokens, users,
		[]router.PublicRegistrar{authHandler},
		[]router.ProtectedRegistrar{
			authHandler,
			facilityhandler.NewHandler(facilitysvc.NewService(facilities, users, events)),
			appointmenthandler.NewHandler(appointmentsvc.NewService(appointments, users, facilities, events)),
			medicalhandler.NewHandler(medicalsvc.NewService(records, users, facilities, appointments)),
			supplyhandler.NewHandler(supplysvc.NewService(supplies, inventory, facilities, events)),
			feedbackhandler.NewHandler(feedbacksvc.NewService(feedbacks, users, facilities)),
			reporthandler.NewHandler(reportsvc.NewService(facilities, users, appointments, supplies, feedbacks)),
		})
	return r.Engine()
}

func do(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func login(t *testing.T, engine *gin.Engine, username string) string {
	t.Helper()
	w, body := do(t, engine, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"username": username,
		"password": memory.SeedPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, "login %s: %s", username, w.Body.String())
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
