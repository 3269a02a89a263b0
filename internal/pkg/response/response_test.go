package response

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doRequest(t *testing.T, handler fiber.Handler) (int, *Response) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed Response
	require.NoError(t, json.Unmarshal(body, &parsed))
	return resp.StatusCode, &parsed
}

func TestSuccessEnvelope(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return Success(c, "ok", fiber.Map{"count": 1})
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, parsed.Success)
	assert.Equal(t, "ok", parsed.Message)
	assert.NotNil(t, parsed.Data)
	assert.Empty(t, parsed.Error)
}

func TestCreatedEnvelope(t *testing.T) {
	status, parsed := doRequest(t, func(c *fiber.Ctx) error {
		return Created(c, "saved", nil)
	})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.True(t, parsed.Success)
	assert.Equal(t, "saved", parsed.Message)
}

func TestErrorEnvelopes(t *testing.T) {
	cases := []struct {
		name    string
		handler fiber.Handler
		status  int
	}{
		{"bad request", func(c *fiber.Ctx) error { return BadRequest(c, "bad") }, fiber.StatusBadRequest},
		{"unauthorized", func(c *fiber.Ctx) error { return Unauthorized(c, "bad") }, fiber.StatusUnauthorized},
		{"forbidden", func(c *fiber.Ctx) error { return Forbidden(c, "bad") }, fiber.StatusForbidden},
		{"not found", func(c *fiber.Ctx) error { return NotFound(c, "bad") }, fiber.StatusNotFound},
		{"internal", func(c *fiber.Ctx) error { return InternalServerError(c, "bad") }, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, parsed := doRequest(t, tc.handler)
			assert.Equal(t, tc.status, status)
			assert.False(t, parsed.Success)
			assert.Equal(t, "bad", parsed.Error)
			assert.Empty(t, parsed.Message)
		})
	}
}
