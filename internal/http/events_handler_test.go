package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terretahub/internal/testsupport"
)

func doPost(t *testing.T, app *fiber.App, path string, payload any) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}
	req := httptest.NewRequest("POST", path, body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, respBody
}

func createMemberViaAPI(t *testing.T, app *fiber.App, handle string) {
	t.Helper()
	resp, _ := doPost(t, app, "/api/v1/members", map[string]string{
		"handle":      handle,
		"displayName": handle,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestMemberLifecycle(t *testing.T) {
	app := testsupport.NewTestApp(t, testsupport.SetupTestDB(t), "")

	resp, body := doPost(t, app, "/api/v1/members", map[string]string{
		"handle":      "Amparo",
		"displayName": "Amparo Vidal",
		"bio":         "fallera major",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created map[string]any
	require.NoError(t, json.Unmarshal(body, &created))
	assert.Equal(t, "amparo", created["handle"])
	assert.Contains(t, []string{"earth", "water", "fire", "air"}, created["element"])
	assert.NotEmpty(t, created["avatarUrl"])

	resp, _ = doPost(t, app, "/api/v1/members", map[string]string{
		"handle":      "amparo",
		"displayName": "Someone Else",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = doGet(t, app, "/api/v1/members/amparo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var fetched map[string]any
	require.NoError(t, json.Unmarshal(body, &fetched))
	assert.Equal(t, created["avatarUrl"], fetched["avatarUrl"])

	resp, _ = doGet(t, app, "/api/v1/members/nobody", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, body = doGet(t, app, "/api/v1/members", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var listed struct {
		Members []map[string]any `json:"members"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))
	assert.Len(t, listed.Members, 1)
}

func TestMemberCreateRejectsBadInput(t *testing.T) {
	app := testsupport.NewTestApp(t, testsupport.SetupTestDB(t), "")

	resp, _ := doPost(t, app, "/api/v1/members", map[string]string{
		"handle":      "bad handle!!",
		"displayName": "Someone",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventRegistrationFlow(t *testing.T) {
	app := testsupport.NewTestApp(t, testsupport.SetupTestDB(t), "")

	resp, body := doPost(t, app, "/api/v1/events", map[string]any{
		"title":    "Paella al Terrat",
		"slug":     "paella-al-terrat",
		"startsAt": time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"capacity": 1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	createMemberViaAPI(t, app, "amparo")
	createMemberViaAPI(t, app, "vicent")

	// First member takes the only seat.
	resp, body = doPost(t, app, "/api/v1/events/paella-al-terrat/registrations",
		map[string]string{"memberHandle": "amparo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reg map[string]any
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "registered", reg["status"])
	regID, _ := reg["id"].(string)
	require.NotEmpty(t, regID)

	// Second member bounces off capacity.
	resp, _ = doPost(t, app, "/api/v1/events/paella-al-terrat/registrations",
		map[string]string{"memberHandle": "vicent"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Cancelling frees the seat.
	resp, _ = doPost(t, app, fmt.Sprintf("/api/v1/registrations/%s/cancel", regID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doPost(t, app, "/api/v1/events/paella-al-terrat/registrations",
		map[string]string{"memberHandle": "vicent"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestApprovalFlowOverHTTP(t *testing.T) {
	app := testsupport.NewTestApp(t, testsupport.SetupTestDB(t), "")

	resp, _ := doPost(t, app, "/api/v1/events", map[string]any{
		"title":            "Members Dinner",
		"slug":             "members-dinner",
		"startsAt":         time.Now().Add(72 * time.Hour).Format(time.RFC3339),
		"requiresApproval": true,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	createMemberViaAPI(t, app, "amparo")

	resp, body := doPost(t, app, "/api/v1/events/members-dinner/registrations",
		map[string]string{"memberHandle": "amparo"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var reg map[string]any
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "pending", reg["status"])
	regID, _ := reg["id"].(string)

	resp, body = doPost(t, app, fmt.Sprintf("/api/v1/registrations/%s/approve", regID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &reg))
	assert.Equal(t, "registered", reg["status"])

	// Re-approving is an invalid transition.
	resp, _ = doPost(t, app, fmt.Sprintf("/api/v1/registrations/%s/approve", regID), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = doPost(t, app, "/api/v1/registrations/unknown-id/approve", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEventEndpointsValidation(t *testing.T) {
	app := testsupport.NewTestApp(t, testsupport.SetupTestDB(t), "")

	resp, _ := doPost(t, app, "/api/v1/events", map[string]any{
		"title": "No Slug",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doGet(t, app, "/api/v1/events/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doPost(t, app, "/api/v1/events/missing/registrations",
		map[string]string{"memberHandle": "nobody"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEventsIndexUpcomingFilter(t *testing.T) {
	app := testsupport.NewTestApp(t, testsupport.SetupTestDB(t), "")

	for slug, offset := range map[string]time.Duration{
		"past-event":   -24 * time.Hour,
		"future-event": 24 * time.Hour,
	} {
		resp, _ := doPost(t, app, "/api/v1/events", map[string]any{
			"title":    slug,
			"slug":     slug,
			"startsAt": time.Now().Add(offset).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, body := doGet(t, app, "/api/v1/events?upcoming=true", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed struct {
		Events []map[string]any `json:"events"`
	}
	require.NoError(t, json.Unmarshal(body, &listed))
	require.Len(t, listed.Events, 1)
	assert.Equal(t, "future-event", listed.Events[0]["slug"])
}

func TestCommunityAPIRequiresKeyWhenConfigured(t *testing.T) {
	app := testsupport.NewTestApp(t, testsupport.SetupTestDB(t), "secret")

	resp, _ := doPost(t, app, "/api/v1/members", map[string]string{
		"handle":      "amparo",
		"displayName": "Amparo",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest("POST", "/api/v1/members",
		bytes.NewReader([]byte(`{"handle":"amparo","displayName":"Amparo"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", "secret")
	authed, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, authed.StatusCode)
}
