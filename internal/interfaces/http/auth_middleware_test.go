package http_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/domain"
	apphttp "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/crm-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "crm-pro-test"
	testExpMin    = 60
)

// stubResolver resuelve siempre el mismo actor (o error) sin tocar la DB.
type stubResolver struct {
	actor *authz.Actor
	err   error
}

func (s *stubResolver) ActorFor(userID string) (*authz.Actor, error) {
	return s.actor, s.err
}

func resolverWith(perms ...string) *stubResolver {
	return &stubResolver{actor: authz.NewActor(testUserID, []string{domain.RoleSales}, perms)}
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(resolver *stubResolver, permission string) *fiber.App {
	app := fiber.New(fiber.Config{
		// Silenciar errores internos en los tests
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	// Ruta protegida: JWT + permiso
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(permission, resolver),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":      true,
				"user_id": apphttp.GetActor(c).UserID,
			})
		},
	)
	return app
}

// tokenFor genera un JWT con los roles indicados.
func tokenFor(t *testing.T, roles ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, roles, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El actor tiene el permiso requerido → debe pasar (HTTP 200).
func TestRequirePermission_ConPermisoAccede(t *testing.T) {
	app := buildTestApp(resolverWith(domain.PermViewLeads), domain.PermViewLeads)
	resp := doRequest(t, app, tokenFor(t, domain.RoleSales))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"un actor con el permiso debe acceder a la ruta")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"], "la respuesta debe incluir ok:true")
	assert.Equal(t, testUserID, body["user_id"], "el actor queda disponible en locals")
}

// Caso 2: El actor no tiene el permiso → HTTP 403 Forbidden.
func TestRequirePermission_SinPermisoBloqueado(t *testing.T) {
	app := buildTestApp(resolverWith(domain.PermViewLeads), domain.PermDeleteLeads)
	resp := doRequest(t, app, tokenFor(t, domain.RoleSales))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"sin el permiso la ruta debe rechazar con 403")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN",
		"la respuesta de error debe incluir el código FORBIDDEN")
}

// Caso 3: El usuario del token ya no existe → HTTP 401.
func TestRequirePermission_UsuarioInexistente_Retorna401(t *testing.T) {
	app := buildTestApp(&stubResolver{err: domain.ErrUserNotFound}, domain.PermViewLeads)
	resp := doRequest(t, app, tokenFor(t, domain.RoleSales))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 4: Usuario inactivo → HTTP 403 USER_INACTIVE.
func TestRequirePermission_UsuarioInactivo_Retorna403(t *testing.T) {
	app := buildTestApp(&stubResolver{err: domain.ErrForbidden}, domain.PermViewLeads)
	resp := doRequest(t, app, tokenFor(t, domain.RoleSales))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "USER_INACTIVE",
		"la respuesta debe indicar el código USER_INACTIVE")
}

// Caso 4b: El resolver falla (DB caída) → HTTP 503, nunca un 403 engañoso.
func TestRequirePermission_ResolverCaido_Retorna503(t *testing.T) {
	app := buildTestApp(&stubResolver{err: errors.New("conexión rechazada")}, domain.PermViewLeads)
	resp := doRequest(t, app, tokenFor(t, domain.RoleSales))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "PERMISSION_CHECK_FAILED")
}

// Caso 4c: Si la resolución falla, ResolveActor corta la cadena: el handler
// no debe ejecutarse después de escribir la respuesta de error.
func TestResolveActor_ErrorCortaLaCadena(t *testing.T) {
	handlerRan := false
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.ResolveActor(&stubResolver{err: domain.ErrUserNotFound}),
		func(c *fiber.Ctx) error {
			handlerRan = true
			return c.JSON(fiber.Map{"ok": true})
		},
	)

	resp := doRequest(t, app, tokenFor(t, domain.RoleSales))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, handlerRan, "el handler no debe correr tras el error de resolución")
}

// Caso 5: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermission_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(resolverWith(domain.PermViewLeads), domain.PermViewLeads)
	resp := doRequest(t, app, "") // sin header
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Caso 6: Token inválido / malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermission_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(resolverWith(domain.PermViewLeads), domain.PermViewLeads)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtractaClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": apphttp.GetUserID(c),
			"roles":   apphttp.GetRoles(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, domain.RoleAdmin, domain.RoleSales))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		UserID string   `json:"user_id"`
		Roles  []string `json:"roles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body.UserID)
	assert.Equal(t, []string{domain.RoleAdmin, domain.RoleSales}, body.Roles)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests JWT pkg — integridad del generate/parse con roles
// ──────────────────────────────────────────────────────────────────────────────

func TestJWT_GenerateAndParse_ConRoles(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, []string{domain.RoleManager}, testIssuer, testExpMin)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	userID, roles, err := pkgjwt.Parse(testJWTSecret, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, userID)
	assert.Equal(t, []string{domain.RoleManager}, roles)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, []string{domain.RoleAdmin}, testIssuer, -1)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse(testJWTSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, []string{domain.RoleAdmin}, testIssuer, testExpMin)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}
