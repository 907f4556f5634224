package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"auto_service_queue/internal/adapter/http/handlers"
	"auto_service_queue/internal/adapter/http/handlers/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAddShopRoutes_RegistersEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := gin.New()
	v1 := r.Group("/v1")
	addPingRoutes(v1)
	addShopRoutes(v1,
		handlers.NewCatalogHandler(mocks.NewMockICatalogUseCase(ctrl)),
		handlers.NewWaitTimeHandler(mocks.NewMockIWaitTimeUseCase(ctrl), mocks.NewMockIQueueUseCase(ctrl)),
		handlers.NewJobHandler(mocks.NewMockIJobUseCase(ctrl)),
		handlers.NewCustomerHandler(mocks.NewMockICustomerUseCase(ctrl), mocks.NewMockINotificationUseCase(ctrl)),
	)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	for _, want := range []string{
		"GET /v1/ping",
		"GET /v1/services",
		"POST /v1/wait-time/estimate",
		"GET /v1/wait-time/customer/:customer_id",
		"GET /v1/wait-time/queue",
		"GET /v1/wait-time/job/:job_id",
		"PUT /v1/wait-time/job/:job_id/status",
		"PATCH /v1/jobs/:job_id/status",
		"POST /v1/customers",
		"GET /v1/customers/:customer_id",
		"POST /v1/customers/:customer_id/jobs",
		"GET /v1/customers/:customer_id/sms-logs",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	addPingRoutes(r.Group("/v1"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
