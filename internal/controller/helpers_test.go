package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"ai-topiclist-be/internal/pkg/logger"
	"ai-topiclist-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const goodToken = "good-token"

var testUserId = uuid.MustParse("7f0c1c52-4ad4-4c3f-9f3a-0b6f0a9d2b11")

type stubVerifier struct{}

func (stubVerifier) Verify(ctx context.Context, token string) (uuid.UUID, error) {
	if token != goodToken {
		return uuid.Nil, errors.New("bad token")
	}
	return testUserId, nil
}

type routable interface {
	RegisterRoutes(r fiber.Router, requireAuth fiber.Handler)
}

func newTestApp(c routable, prefix string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: serverutils.ErrorHandler(logger.NewNop())})
	var r fiber.Router = app
	if prefix != "" {
		r = app.Group(prefix)
	}
	c.RegisterRoutes(r, serverutils.NewJwtMiddleware(stubVerifier{}))
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}, token string) (int, map[string]interface{}) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]interface{}{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	} else if len(raw) > 0 {
		out["_raw"] = string(raw)
	}
	return resp.StatusCode, out
}

