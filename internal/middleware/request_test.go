package middleware_test

import (
	"net/http/httptest"
	"testing"

	"learnhub/internal/domain"
	"learnhub/internal/middleware"
	"learnhub/internal/util"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString(middleware.RequestIDFromCtx(c))
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return domain.NewQuizNotFoundError(1)
	})
	return app
}

func TestRequestID_GeneratesULID(t *testing.T) {
	resp, err := newRequestApp().Test(httptest.NewRequest("GET", "/ok", nil), -1)
	require.NoError(t, err)

	id := resp.Header.Get(middleware.RequestIDHeader)
	assert.True(t, util.IsULID(id), "expected a ULID, got %q", id)
}

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-42")

	resp, err := newRequestApp().Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "trace-42", resp.Header.Get(middleware.RequestIDHeader))
}

func TestRequestLogger_KeepsErrorStatus(t *testing.T) {
	resp, err := newRequestApp().Test(httptest.NewRequest("GET", "/missing", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))
}
