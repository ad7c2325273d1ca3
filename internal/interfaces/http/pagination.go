package http

import "github.com/gofiber/fiber/v2"

// Límites de paginación para los listados.
const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// pageParams lee limit/offset del query string y los acota a valores sanos.
// Valores no numéricos, negativos o fuera de rango no llegan nunca al repo.
func pageParams(c *fiber.Ctx) (limit, offset int) {
	return clampPage(c.QueryInt("limit", defaultPageLimit), c.QueryInt("offset", 0))
}

func clampPage(limit, offset int) (int, int) {
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
