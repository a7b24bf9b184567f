package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"learnhub/internal/dto"
	"learnhub/internal/handler"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(ctx context.Context) error { return p.err }

type fakeCache struct{ pingErr error }

func (f fakeCache) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (f fakeCache) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	return nil
}
func (f fakeCache) Delete(ctx context.Context, key string) error      { return nil }
func (f fakeCache) Incr(ctx context.Context, key string) (int64, error) { return 1, nil }
func (f fakeCache) Ping(ctx context.Context) error                     { return f.pingErr }

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		h      *handler.HealthHandler
		status int
		body   dto.HealthResponse
	}{
		{
			name:   "database only",
			h:      handler.NewHealthHandler(fakePinger{}, nil),
			status: fiber.StatusOK,
			body:   dto.HealthResponse{Status: "ok", Checks: map[string]string{"database": "up"}},
		},
		{
			name:   "cache down degrades",
			h:      handler.NewHealthHandler(fakePinger{}, fakeCache{pingErr: errors.New("refused")}),
			status: fiber.StatusOK,
			body:   dto.HealthResponse{Status: "degraded", Checks: map[string]string{"database": "up", "cache": "down"}},
		},
		{
			name:   "database down",
			h:      handler.NewHealthHandler(fakePinger{err: errors.New("refused")}, fakeCache{}),
			status: fiber.StatusServiceUnavailable,
			body:   dto.HealthResponse{Status: "unavailable", Checks: map[string]string{"database": "down", "cache": "up"}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", tc.h.Health)

			resp, err := app.Test(httptest.NewRequest("GET", "/health", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			var body dto.HealthResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tc.body, body)
		})
	}
}
