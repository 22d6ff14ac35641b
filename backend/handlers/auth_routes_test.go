package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kappatrack/kappatrack/backend/config"
	"github.com/kappatrack/kappatrack/backend/handlers"
	"github.com/kappatrack/kappatrack/backend/middleware"
	webmodels "github.com/kappatrack/kappatrack/backend/models"
	webservices "github.com/kappatrack/kappatrack/backend/services"
	"github.com/kappatrack/kappatrack/kappatrack"
	"github.com/kappatrack/kappatrack/kappatrack/gamedata"
	"github.com/kappatrack/kappatrack/kappatrack/services"
)

// newTestApp wires the API group the way main does: optional auth on the
// group, the required-auth gate on mutations only.
func newTestApp() (*fiber.App, *handlers.WebApp) {
	cfg := &kappatrack.Config{}
	cfg.Web.SessionSecret = "test-secret"
	webCfg := config.NewWebAppConfig(cfg, true)

	webApp := &handlers.WebApp{
		Config:         webCfg,
		TaskService:    services.NewTaskService(nil),
		SessionService: webservices.NewSessionService(webCfg),
	}

	app := fiber.New()
	api := app.Group("/api")
	api.Use(middleware.OptionalAuth(webApp))

	authed := middleware.AuthRequired(webApp)

	api.Get("/tasks", handlers.TasksList(webApp))
	api.Post("/tasks/toggle", authed, handlers.TasksToggle(webApp))
	api.Get("/bosses", handlers.BossesList(webApp))
	api.Get("/prestige/profile", handlers.PrestigeProfile(webApp))
	api.Get("/prestige/:level/completion", handlers.PrestigeCompletion(webApp))
	api.Get("/hideout/summary", handlers.HideoutSummary(webApp))
	api.Get("/collector", handlers.CollectorList(webApp))
	api.Get("/lightkeeper/quests", handlers.LightkeeperList(webApp))
	api.Get("/notes", handlers.NoteGet(webApp))
	api.Put("/notes", authed, handlers.NoteSave(webApp))

	return app, webApp
}

func getJSON(t *testing.T, app *fiber.App, path string) map[string]any {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode, path)

	var body struct {
		Success bool           `json:"success"`
		Data    map[string]any `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success, path)
	return body.Data
}

func TestAnonymousReadsReturnDefaults(t *testing.T) {
	app, _ := newTestApp()

	data := getJSON(t, app, "/api/tasks")
	assert.Empty(t, data["tasks"])
	assert.Len(t, data["traders"], len(gamedata.Traders()))

	data = getJSON(t, app, "/api/bosses")
	bosses, ok := data["bosses"].([]any)
	require.True(t, ok)
	require.Len(t, bosses, len(gamedata.Bosses()))
	for _, raw := range bosses {
		boss := raw.(map[string]any)
		assert.Equal(t, false, boss["finalTaskUnlocked"], boss["boss"])
		assert.Equal(t, float64(0), boss["completed"], boss["boss"])
	}

	data = getJSON(t, app, "/api/prestige/profile")
	assert.Equal(t, float64(1), data["currentPrestige"])
	assert.Equal(t, float64(0), data["level"])

	data = getJSON(t, app, "/api/prestige/1/completion")
	assert.Equal(t, float64(1), data["completed"])
	assert.Equal(t, float64(13), data["total"])

	data = getJSON(t, app, "/api/hideout/summary")
	overall := data["overall"].(map[string]any)
	assert.Equal(t, float64(0), overall["completed"])

	data = getJSON(t, app, "/api/collector")
	assert.Empty(t, data["items"])

	data = getJSON(t, app, "/api/lightkeeper/quests")
	assert.Empty(t, data["quests"])

	data = getJSON(t, app, "/api/notes")
	assert.Equal(t, "", data["content"])
}

func TestAnonymousMutationsRejected(t *testing.T) {
	app, _ := newTestApp()

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/toggle", strings.NewReader(`{"task_key":"Prapor:Debut"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest(http.MethodPut, "/api/notes", strings.NewReader(`{"content":"stash keys"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionPassesMutationGate(t *testing.T) {
	app, webApp := newTestApp()

	app.Get("/set", func(c *fiber.Ctx) error {
		return webApp.SessionService.CreateSession(c, &webmodels.UserSession{
			UserID:    7,
			Username:  "nikita",
			ExpiresAt: time.Now().Add(time.Hour),
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil))
	require.NoError(t, err)

	var cookie string
	for _, raw := range resp.Header.Values("Set-Cookie") {
		cookie = raw
	}
	require.NotEmpty(t, cookie)

	// A malformed body reaches the handler past the auth gate
	req := httptest.NewRequest(http.MethodPost, "/api/tasks/toggle", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cookie", cookie)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
