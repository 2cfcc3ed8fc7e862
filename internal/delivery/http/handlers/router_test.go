package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/dto/response"
	"github.com/LavaJover/shvark-storefront-service/internal/delivery/http/middleware"
	"github.com/LavaJover/shvark-storefront-service/internal/domain"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-storefront-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-storefront-service/internal/templates"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/application"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/provisioning"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/seeding"
	"github.com/LavaJover/shvark-storefront-service/internal/usecase/usecasetest"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	OK     bool                  `json:"ok"`
	Data   json.RawMessage       `json:"data"`
	Error  string                `json:"error"`
	Fields []response.FieldError `json:"fields"`
}

type testServer struct {
	router  *gin.Engine
	apps    *usecasetest.ApplicationRepo
	stores  *usecasetest.StoreRepo
	catalog *usecasetest.CatalogRepo
	pingErr error
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		apps:    usecasetest.NewApplicationRepo(),
		stores:  usecasetest.NewStoreRepo(),
		catalog: usecasetest.NewCatalogRepo(),
	}
	log := logger.NewTestLogger(t)
	reg := prometheus.NewRegistry()
	m := metrics.NewApplicationMetrics(reg)
	catalog := templates.NewStaticCatalog()

	prov, err := provisioning.NewStoreProvisioner(s.stores, catalog, provisioning.Config{}, log, m)
	require.NoError(t, err)
	seeder := seeding.NewSampleDataSeeder(s.catalog, catalog, log, m)
	appUC := application.NewDefaultApplicationUsecase(s.apps, prov, seeder, usecasetest.NewPublisher(), nil, m, log)
	t.Cleanup(appUC.Wait)
	storeUC := usecase.NewDefaultStoreUsecase(s.stores, catalog)

	s.router = NewRouter(RouterConfig{
		Applications: NewApplicationHandler(appUC, catalog, log),
		Stores:       NewStoreHandler(storeUC, log),
		Gatherer:     reg,
		Ping:         func(context.Context) error { return s.pingErr },
		Log:          log,
	})
	return s
}

func (s *testServer) do(t *testing.T, method, path, userID, role string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	if role != "" {
		req.Header.Set(middleware.HeaderUserRole, role)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func submitBody(template string) map[string]interface{} {
	return map[string]interface{}{
		"merchantData": map[string]string{
			"firstName": "Omar", "lastName": "Saleh", "email": "omar@example.com",
			"phone": "+966511111111", "city": "Jeddah",
			"businessName": "Omar Tech", "businessType": "electronics",
		},
		"storeConfig": map[string]interface{}{
			"template": template,
			"customization": map[string]string{
				"storeName": "Omar Tech", "storeDescription": "Gadgets",
				"primaryColor": "#2563EB", "secondaryColor": "#0F172A", "backgroundColor": "#F8FAFC",
			},
		},
	}
}

func (s *testServer) submit(t *testing.T, merchantID string) string {
	t.Helper()
	rec, env := s.do(t, http.MethodPost, "/api/v1/applications", merchantID, "", submitBody("tech-modern"))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var out response.SubmitApplicationResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	assert.Equal(t, "pending", out.Status)
	return out.ID
}

func TestSubmit_RequiresIdentity(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications", "", "", submitBody("tech-modern"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, env.OK)
}

func TestSubmit_UnknownTemplate(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications", "m-1", "", submitBody("no-such-template"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "storeConfig.template", env.Fields[0].Field)
}

func TestSubmit_MissingFields(t *testing.T) {
	s := newTestServer(t)
	body := submitBody("tech-modern")
	body["merchantData"].(map[string]string)["email"] = ""

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications", "m-1", "", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotEmpty(t, env.Fields)
	assert.Equal(t, "merchantData.email", env.Fields[0].Field)
	apps, err := s.apps.ListApplications(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestSubmit_BindingErrorsUseJSONFieldNames(t *testing.T) {
	s := newTestServer(t)
	body := submitBody("tech-modern")
	delete(body["merchantData"].(map[string]string), "city")
	customization := body["storeConfig"].(map[string]interface{})["customization"].(map[string]string)
	delete(customization, "primaryColor")

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications", "m-1", "", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Fields, 2)
	assert.Equal(t, "merchantData.city", env.Fields[0].Field)
	assert.Equal(t, "is required", env.Fields[0].Message)
	assert.Equal(t, "storeConfig.customization.primaryColor", env.Fields[1].Field)
}

func TestSubmit_MalformedBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, "m-1")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), `"fields"`)
}

func TestSubmit_SecondActiveApplicationConflicts(t *testing.T) {
	s := newTestServer(t)
	s.submit(t, "m-1")

	rec, _ := s.do(t, http.MethodPost, "/api/v1/applications", "m-1", "", submitBody("tech-modern"))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestApprove_ProvisionsStoreOnce(t *testing.T) {
	s := newTestServer(t)
	id := s.submit(t, "m-1")

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/approve", "admin-1", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var decision response.DecisionResponse
	require.NoError(t, json.Unmarshal(env.Data, &decision))
	assert.Equal(t, "approved", decision.Application.Status)
	require.NotNil(t, decision.Application.ReviewedBy)
	assert.Equal(t, "admin-1", *decision.Application.ReviewedBy)
	require.NotNil(t, decision.Store)
	assert.Equal(t, "omar-tech", decision.Store.Slug)
	assert.Equal(t, "m-1", decision.Store.OwnerID)
	assert.False(t, decision.NeedsProvisioningRetry)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/approve", "admin-1", "admin", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 1, s.stores.Count())

	rec, env = s.do(t, http.MethodGet, "/api/v1/stores/Omar-Tech", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var store response.StoreResponse
	require.NoError(t, json.Unmarshal(env.Data, &store))
	assert.Equal(t, "active", store.Status)
	assert.Equal(t, id, store.ApplicationID)

	rec, env = s.do(t, http.MethodGet, "/api/v1/merchants/m-1/stores", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stores []response.StoreResponse
	require.NoError(t, json.Unmarshal(env.Data, &stores))
	assert.Len(t, stores, 1)
}

func TestApprove_StatusCodes(t *testing.T) {
	s := newTestServer(t)
	id := s.submit(t, "m-1")

	rec, _ := s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/approve", "m-1", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(t, http.MethodPost, "/api/v1/applications/missing/approve", "admin-1", "admin", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApprove_SeedingFailureNeedsRetry(t *testing.T) {
	s := newTestServer(t)
	id := s.submit(t, "m-1")
	s.catalog.SeedErr = errors.New("catalog down")

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/approve", "admin-1", "admin", nil)
	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var decision response.DecisionResponse
	require.NoError(t, json.Unmarshal(env.Data, &decision))
	assert.True(t, decision.NeedsProvisioningRetry)
	assert.Equal(t, "approved", decision.Application.Status)
	assert.Equal(t, "failed", decision.Application.ProvisioningStatus)

	s.catalog.SeedErr = nil
	rec, env = s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/provisioning/retry", "admin-1", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, &decision))
	assert.Equal(t, "done", decision.Application.ProvisioningStatus)
	assert.Equal(t, 1, s.stores.Count())

	rec, _ = s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/provisioning/retry", "admin-1", "admin", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestReject(t *testing.T) {
	s := newTestServer(t)
	id := s.submit(t, "m-1")

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/reject", "admin-1", "admin", map[string]string{"reason": "  "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, env.Fields)

	rec, env = s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/reject", "admin-1", "admin", map[string]string{"reason": "incomplete documents"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var decision response.DecisionResponse
	require.NoError(t, json.Unmarshal(env.Data, &decision))
	assert.Equal(t, "rejected", decision.Application.Status)
	require.NotNil(t, decision.Application.RejectionReason)
	assert.Equal(t, "incomplete documents", *decision.Application.RejectionReason)
	assert.Nil(t, decision.Store)
	assert.Equal(t, 0, s.stores.Count())

	// resubmission is allowed once the previous application is rejected
	s.submit(t, "m-1")
}

func TestReject_MissingReason(t *testing.T) {
	s := newTestServer(t)
	id := s.submit(t, "m-1")

	rec, env := s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/reject", "admin-1", "admin", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.Len(t, env.Fields, 1)
	assert.Equal(t, "reason", env.Fields[0].Field)
	app, err := s.apps.GetApplicationByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicationPending, app.Status)
}

func TestQueries(t *testing.T) {
	s := newTestServer(t)
	first := s.submit(t, "m-1")
	s.submit(t, "m-2")
	s.submit(t, "m-3")
	_, _ = s.do(t, http.MethodPost, "/api/v1/applications/"+first+"/approve", "admin-1", "admin", nil)

	rec, env := s.do(t, http.MethodGet, "/api/v1/applications?status=pending", "admin-1", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var apps []response.ApplicationResponse
	require.NoError(t, json.Unmarshal(env.Data, &apps))
	assert.Len(t, apps, 2)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/applications?status=archived", "admin-1", "admin", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec, env = s.do(t, http.MethodGet, "/api/v1/applications/stats", "admin-1", "admin", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats response.StatsResponse
	require.NoError(t, json.Unmarshal(env.Data, &stats))
	assert.Equal(t, response.StatsResponse{Total: 3, Pending: 2, Approved: 1, Rejected: 0}, stats)

	rec, env = s.do(t, http.MethodGet, "/api/v1/merchants/m-1/application", "m-1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var app response.ApplicationResponse
	require.NoError(t, json.Unmarshal(env.Data, &app))
	assert.Equal(t, first, app.ID)
	assert.Equal(t, "approved", app.Status)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/merchants/m-1/application", "m-2", "", nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/applications/"+first, "m-2", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/applications/"+first, "m-1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/merchants/m-9/application", "admin-1", "admin", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTemplates(t *testing.T) {
	s := newTestServer(t)

	rec, env := s.do(t, http.MethodGet, "/api/v1/templates", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tmpls []response.TemplateResponse
	require.NoError(t, json.Unmarshal(env.Data, &tmpls))
	assert.Len(t, tmpls, 5)

	rec, env = s.do(t, http.MethodGet, "/api/v1/templates/tech-modern", "", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tmpl response.TemplateResponse
	require.NoError(t, json.Unmarshal(env.Data, &tmpl))
	assert.Equal(t, "tech-modern", tmpl.ID)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/templates/unknown", "", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = s.do(t, http.MethodGet, "/api/v1/stores/nope", "", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	rec, _ := s.do(t, http.MethodGet, "/healthz", "", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	s.pingErr = errors.New("connection refused")
	rec, env := s.do(t, http.MethodGet, "/healthz", "", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "connection refused", env.Error)

	id := s.submit(t, "m-1")
	_, _ = s.do(t, http.MethodPost, "/api/v1/applications/"+id+"/approve", "admin-1", "admin", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	mrec := httptest.NewRecorder()
	s.router.ServeHTTP(mrec, req)
	assert.Equal(t, http.StatusOK, mrec.Code)
	assert.Contains(t, mrec.Body.String(), "store_application_decisions_total")
	assert.Contains(t, mrec.Body.String(), "stores_provisioned_total")
}
