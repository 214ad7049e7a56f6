package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixeldesignindia/organic-api/utils"
)

const testSecret = "test-secret"

func testApp() *fiber.App {
	app := fiber.New()
	api := app.Group("/api/v1", Auth(testSecret))
	api.Get("/user/profile", func(c *fiber.Ctx) error {
		return c.SendString(LoggedUserID(c))
	})
	api.Post("/user/login", func(c *fiber.Ctx) error {
		return c.SendString("open")
	})
	return app
}

func TestAuthRejectsMissingToken(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthAcceptsValidToken(t *testing.T) {
	app := testApp()

	pair, err := utils.IssueTokenPair("665f1c0a9d3e4b0001a2b3c4", testSecret, testSecret, time.Hour, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/profile", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthSkipsOpenPaths(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/login", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
