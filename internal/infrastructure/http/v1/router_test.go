package v1_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aktiva/internal/domain/asset"
	"aktiva/internal/domain/inventory"
	"aktiva/internal/domain/maintenance"
	v1 "aktiva/internal/infrastructure/http/v1"
	"aktiva/internal/infrastructure/storage/jsonfile"
	"aktiva/pkg/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	ctx := context.Background()
	dir := t.TempDir()

	assetRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dir, "assets.json")),
		func() *asset.Asset { return &asset.Asset{} })
	require.NoError(t, err)
	maintenanceRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dir, "maintenances.json")),
		func() *maintenance.Maintenance { return &maintenance.Maintenance{} })
	require.NoError(t, err)
	inventoryRepo, err := jsonfile.NewRepository(ctx, jsonfile.NewStore(filepath.Join(dir, "inventory.json")),
		func() *inventory.Item { return &inventory.Item{} })
	require.NoError(t, err)

	log, err := logger.New(logger.Config{Level: "error"})
	require.NoError(t, err)

	return v1.NewRouter(v1.RouterConfig{
		Logger:             log,
		AssetService:       asset.NewService(assetRepo),
		MaintenanceService: maintenance.NewService(maintenanceRepo),
		InventoryService:   inventory.NewService(inventoryRepo),
		DataDir:            dir,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

const laptopJSON = `{
	"name": "Company Laptop",
	"purchaseDate": "2023-01-01",
	"purchasePrice": "1500.00",
	"location": "Main Office",
	"category": "IT Equipment",
	"usefulLifeYears": 3,
	"salvageValue": "300.00"
}`

func createLaptop(t *testing.T, router *gin.Engine) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/v1/assets", laptopJSON)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	id, ok := body["id"].(string)
	require.True(t, ok, "response has no id: %v", body)
	return id
}

func TestRouter_Index(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeBody(t, w), "available_routes")
}

func TestRouter_Health(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{"/health/live", "/health/ready", "/health/info"} {
		w := doJSON(t, router, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, "%s body: %s", path, w.Body.String())
	}
}

func TestRouter_CreateAndGetAsset(t *testing.T) {
	router := setupRouter(t)
	assetID := createLaptop(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/assets/"+assetID, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Company Laptop", body["name"])
	assert.Equal(t, "Active", body["status"])
	assert.Equal(t, "Straight Line", body["depreciationMethod"])
	assert.Equal(t, "1500.00", body["currentValue"])
}

func TestRouter_ListAssets(t *testing.T) {
	router := setupRouter(t)
	createLaptop(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/v1/assets", "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["totalCount"])
}

func TestRouter_GetUnknownAsset(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/assets/3f2c8a1e-0000-0000-0000-000000000009", "")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeBody(t, w)["code"])
}

func TestRouter_GetMalformedID(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/assets/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
}

func TestRouter_CreateAssetRejectsBadEnumLabel(t *testing.T) {
	router := setupRouter(t)

	body := strings.Replace(laptopJSON, `"usefulLifeYears": 3,`,
		`"usefulLifeYears": 3, "status": "Broken",`, 1)
	w := doJSON(t, router, http.MethodPost, "/api/v1/assets", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
}

func TestRouter_CreateAssetRejectsSalvageAbovePrice(t *testing.T) {
	router := setupRouter(t)

	body := strings.Replace(laptopJSON, `"salvageValue": "300.00"`, `"salvageValue": "9999.00"`, 1)
	w := doJSON(t, router, http.MethodPost, "/api/v1/assets", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
}

func TestRouter_RevalueAssets(t *testing.T) {
	router := setupRouter(t)
	assetID := createLaptop(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/v1/assets/revalue", `{"asOf": "2024-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/assets/"+assetID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1100.27", decodeBody(t, w)["currentValue"])
}

func TestRouter_RevalueRequiresDate(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/assets/revalue", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])
}

func TestRouter_UpdateAsset(t *testing.T) {
	router := setupRouter(t)
	assetID := createLaptop(t, router)

	update := strings.Replace(laptopJSON, `"location": "Main Office",`, `"location": "Warehouse",`, 1)
	update = strings.Replace(update, `"usefulLifeYears": 3,`,
		`"usefulLifeYears": 3, "currentValue": "1500.00", "status": "Under Maintenance", "depreciationMethod": "Straight Line",`, 1)
	w := doJSON(t, router, http.MethodPut, "/api/v1/assets/"+assetID, update)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "Warehouse", body["location"])
	assert.Equal(t, "Under Maintenance", body["status"])
}

func TestRouter_RejectedUpdateLeavesRecordUntouched(t *testing.T) {
	router := setupRouter(t)
	assetID := createLaptop(t, router)

	// Passes request binding but fails domain validation (salvage > price).
	update := `{
		"name": "Mangled",
		"purchaseDate": "2023-01-01",
		"purchasePrice": "1500.00",
		"currentValue": "1500.00",
		"location": "Main Office",
		"category": "IT Equipment",
		"usefulLifeYears": 3,
		"status": "Active",
		"depreciationMethod": "Straight Line",
		"salvageValue": "9999.00"
	}`
	w := doJSON(t, router, http.MethodPut, "/api/v1/assets/"+assetID, update)
	require.Equal(t, http.StatusBadRequest, w.Code, "body: %s", w.Body.String())
	assert.Equal(t, "VALIDATION_ERROR", decodeBody(t, w)["code"])

	// The stored record must not carry any of the rejected values.
	w = doJSON(t, router, http.MethodGet, "/api/v1/assets/"+assetID, "")
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "Company Laptop", body["name"])
	assert.Equal(t, "300.00", body["salvageValue"])
}

func TestRouter_DeleteAsset(t *testing.T) {
	router := setupRouter(t)
	assetID := createLaptop(t, router)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/assets/"+assetID, "")
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/assets/"+assetID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_MaintenanceForAsset(t *testing.T) {
	router := setupRouter(t)
	assetID := createLaptop(t, router)
	otherID := createLaptop(t, router)

	record := fmt.Sprintf(`{
		"assetId": %q,
		"date": "2023-06-15",
		"description": "Annual checkup",
		"cost": "150.00",
		"performedBy": "IT Department",
		"maintenanceType": "Preventive"
	}`, assetID)
	w := doJSON(t, router, http.MethodPost, "/api/v1/maintenance", record)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/api/v1/assets/"+assetID+"/maintenance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decodeBody(t, w)["totalCount"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/assets/"+otherID+"/maintenance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decodeBody(t, w)["totalCount"])
}

func TestRouter_InventoryCRUD(t *testing.T) {
	router := setupRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/inventory",
		`{"name": "Spare Laptop Charger", "quantity": 50, "costPerItem": "25.00"}`)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	itemID, ok := body["id"].(string)
	require.True(t, ok)
	assert.Equal(t, "In Stock", body["status"])

	w = doJSON(t, router, http.MethodGet, "/api/v1/inventory/"+itemID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(50), decodeBody(t, w)["quantity"])
}
