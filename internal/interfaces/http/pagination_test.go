package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampPage(t *testing.T) {
	cases := []struct {
		name                  string
		limit, offset         int
		wantLimit, wantOffset int
	}{
		{"valores normales", 20, 40, 20, 40},
		{"limit cero vuelve al default", 0, 0, defaultPageLimit, 0},
		{"limit negativo vuelve al default", -5, 0, defaultPageLimit, 0},
		{"limit excesivo se acota", 5000, 0, maxPageLimit, 0},
		{"offset negativo se acota a cero", 20, -1, 20, 0},
	}
	for _, c := range cases {
		limit, offset := clampPage(c.limit, c.offset)
		assert.Equal(t, c.wantLimit, limit, c.name)
		assert.Equal(t, c.wantOffset, offset, c.name)
	}
}

// Query strings con basura o negativos nunca llegan al repo: se acotan aquí.
func TestPageParams_EntradaBasura(t *testing.T) {
	app := fiber.New()
	app.Get("/list", func(c *fiber.Ctx) error {
		limit, offset := pageParams(c)
		return c.JSON(fiber.Map{"limit": limit, "offset": offset})
	})

	cases := []struct {
		query                 string
		wantLimit, wantOffset int
	}{
		{"", defaultPageLimit, 0},
		{"?limit=50&offset=10", 50, 10},
		{"?limit=-5&offset=-3", defaultPageLimit, 0},
		{"?limit=abc&offset=xyz", defaultPageLimit, 0},
		{"?limit=99999", maxPageLimit, 0},
	}
	for _, c := range cases {
		req := httptest.NewRequest(http.MethodGet, "/list"+c.query, nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err, c.query)

		var body struct {
			Limit  int `json:"limit"`
			Offset int `json:"offset"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body), c.query)
		resp.Body.Close()
		assert.Equal(t, c.wantLimit, body.Limit, c.query)
		assert.Equal(t, c.wantOffset, body.Offset, c.query)
	}
}
