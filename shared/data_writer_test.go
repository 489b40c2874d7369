package shared

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()

	app := fiber.New(fiber.Config{
		ErrorHandler: ResponseError,
	})
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestResponseHelpers(t *testing.T) {
	code, body := render(t, func(c *fiber.Ctx) error { return ResponseOK(c, "pong") })
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"code":200,"message":"Success","data":"pong"}`, body)

	code, body = render(t, func(c *fiber.Ctx) error { return ResponseCreated(c, map[string]bool{"success": true}) })
	assert.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `{"code":201,"message":"Created","data":{"success":true}}`, body)

	code, body = render(t, ResponseNotFound)
	assert.Equal(t, http.StatusNotFound, code)
	assert.JSONEq(t, `{"code":404,"message":"Not Found"}`, body)
}

func TestResponseError(t *testing.T) {
	code, body := render(t, func(c *fiber.Ctx) error {
		return NewBadRequestError(nil, "Invalid request")
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.JSONEq(t, `{"code":400,"message":"Invalid request"}`, body)

	code, body = render(t, func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusMethodNotAllowed, "Method Not Allowed")
	})
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.JSONEq(t, `{"code":405,"message":"Method Not Allowed"}`, body)

	code, body = render(t, func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.JSONEq(t, `{"code":500,"message":"Internal Server Error"}`, body)
}
