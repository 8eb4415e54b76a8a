package inventory_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"inventory-manager/core/reconcile"
	"inventory-manager/feature/inventory"
	"inventory-manager/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testApp(t *testing.T) *fiber.App {
	t.Helper()

	feature := inventory.NewFeature(emptyStore(),
		reconcile.NewClientPool(emptyListerFactory(t)), zap.NewNop())

	app := fiber.New()
	require.NoError(t, feature.Load(app))
	return app
}

func TestHandleReconcile_MockRequest(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("POST", "/reconcile/instances",
		strings.NewReader(`{"action":"START","region":"us-east-1","isMockRequest":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary reconcile.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Zero(t, summary.Pages)
}

func TestHandleReconcile_FullCycle(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("POST", "/reconcile/disks",
		strings.NewReader(`{"region":"us-east-1","endpointLink":"/endpoints/e1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var summary reconcile.Summary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 1, summary.Pages)
}

func TestHandleReconcile_UnknownKind(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("POST", "/reconcile/teapots",
		strings.NewReader(`{"isMockRequest":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleReconcile_UnknownAction(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("POST", "/reconcile/instances",
		strings.NewReader(`{"action":"EXPLODE"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleReconcile_MalformedBody(t *testing.T) {
	app := testApp(t)

	req := httptest.NewRequest("POST", "/reconcile/instances", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 2000)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleListKinds(t *testing.T) {
	app := testApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/reconcile/kinds", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.KindsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Kinds, "instances")
	assert.Contains(t, body.Kinds, "buckets")
}
