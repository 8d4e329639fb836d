package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"masterdataapi/config"
	"masterdataapi/pkg/memdb"
	"masterdataapi/pkg/principal"
	"masterdataapi/repository"
	"masterdataapi/schema"
	"masterdataapi/services"
	"masterdataapi/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "controller-test-secret"

func newTestRouter(t *testing.T) (*gin.Engine, *principal.JWTResolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if config.Cfg.AuditLogFile == "" {
		config.Cfg.AuditLogFile = filepath.Join(os.TempDir(), "masterdataapi_test_audit.log")
	}

	registry := schema.DefaultRegistry()
	db := memdb.OpenTest(t, registry)
	store := repository.NewRecordStore(db)
	sink := services.NewAuditSink(repository.NewAuditRepository(db))
	SetWrapperService(services.NewWrapperService(registry, store, sink))

	resolver := principal.NewJWTResolver(testSecret)

	router := gin.New()
	api := router.Group("/api/master")
	RegisterHealthRoutes(api)

	protected := api.Group("")
	protected.Use(utils.AuthMiddleware(resolver))
	RegisterWrapperRoutes(protected)

	return router, resolver
}

func doJSON(t *testing.T, router *gin.Engine, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/master/wrapper", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoint_NoAuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/master/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "ok", body["status"])
}

func TestWrapper_RejectsMissingCredential(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, "", map[string]interface{}{
		"table_name": "tbl_country_master", "method_name": "list",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Authentication credentials were not provided.", body["message"])
}

func TestWrapper_RejectsForgedCredential(t *testing.T) {
	router, _ := newTestRouter(t)
	forged := principal.NewJWTResolver("some-other-secret")
	token, err := forged.Issue(principal.Principal{Login: "mallory"}, nil)
	require.NoError(t, err)

	rec := doJSON(t, router, token, map[string]interface{}{
		"table_name": "tbl_country_master", "method_name": "list",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestWrapper_CreateThenListRoundtrip(t *testing.T) {
	router, resolver := newTestRouter(t)
	token, err := resolver.Issue(principal.Principal{Login: "alice", Role: "admin"}, nil)
	require.NoError(t, err)

	rec := doJSON(t, router, token, map[string]interface{}{
		"table_name":  "tbl_country_master",
		"method_name": "create",
		"data": map[string]interface{}{
			"country_id": "CNT-00001", "name": "India", "iso_code": "IN",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decodeEnvelope(t, rec)
	assert.Equal(t, true, created["success"])
	assert.Equal(t, "Record created successfully.", created["message"])

	rec = doJSON(t, router, token, map[string]interface{}{
		"table_name": "tbl_country_master", "method_name": "list",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	listed := decodeEnvelope(t, rec)
	rows := listed["data"].([]interface{})
	require.Len(t, rows, 1)
	row := rows[0].(map[string]interface{})
	assert.Equal(t, "India", row["name"])
}

func TestWrapper_InvalidBodyAndMissingFields(t *testing.T) {
	router, resolver := newTestRouter(t)
	token, err := resolver.Issue(principal.Principal{Login: "alice"}, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/master/wrapper", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid request body.", body["message"])

	rec = doJSON(t, router, token, map[string]interface{}{"table_name": "tbl_country_master"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body = decodeEnvelope(t, rec)
	assert.Equal(t, "Missing required field: table_name and method_name are mandatory.", body["message"])
}

func TestWrapper_UnknownTableOverHTTP(t *testing.T) {
	router, resolver := newTestRouter(t)
	token, err := resolver.Issue(principal.Principal{Login: "alice"}, nil)
	require.NoError(t, err)

	rec := doJSON(t, router, token, map[string]interface{}{
		"table_name": "tbl_users; DROP TABLE tbl_users", "method_name": "list",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Invalid table name.", body["message"])
}
