package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/crm-pro/internal/application/authz"
	"github.com/tu-usuario/crm-pro/internal/application/dto"
	"github.com/tu-usuario/crm-pro/internal/domain"
)

// LocalActor key del actor resuelto en c.Locals.
const LocalActor = "actor"

// actorResolver es el contrato mínimo que necesita el middleware para resolver
// el actor de la petición. Lo implementa *authz.PermissionService; el uso de
// interfaz evita acoplar el paquete http al cableado de repos.
type actorResolver interface {
	ActorFor(userID string) (*authz.Actor, error)
}

// ResolveActor devuelve un middleware Fiber que carga el actor (usuario + unión
// de permisos de sus roles) y lo deja en c.Locals. Debe usarse DESPUÉS de
// AuthMiddleware (necesita LocalUserID). Los permisos se leen de la DB en cada
// petición: revocar un rol surte efecto sin esperar a que expire el token.
func ResolveActor(resolver actorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, ok, err := loadActor(c, resolver)
		if !ok {
			// loadActor ya escribió la respuesta de error.
			return err
		}
		return c.Next()
	}
}

// RequirePermission devuelve un middleware Fiber que resuelve el actor y exige
// el permiso indicado. Para rutas cuyo caso de uso ya decide con el actor,
// basta ResolveActor.
func RequirePermission(permission string, resolver actorResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		actor, ok, err := loadActor(c, resolver)
		if !ok {
			return err
		}
		if !actor.Can(permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "se requiere el permiso '" + permission + "'",
			})
		}
		return c.Next()
	}
}

// loadActor resuelve el actor y lo deja en locals. Si la resolución falla,
// escribe la respuesta de error y devuelve ok=false: el middleware debe cortar
// la cadena sin llamar a c.Next(). El error es el de escribir la respuesta.
func loadActor(c *fiber.Ctx, resolver actorResolver) (*authz.Actor, bool, error) {
	userID := GetUserID(c)
	if userID == "" {
		return nil, false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "user_id no encontrado en el token",
		})
	}
	actor, err := resolver.ActorFor(userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, false, c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "el usuario del token ya no existe",
			})
		}
		if errors.Is(err, domain.ErrForbidden) {
			return nil, false, c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "USER_INACTIVE",
				Message: "el usuario está inactivo",
			})
		}
		return nil, false, c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code:    "PERMISSION_CHECK_FAILED",
			Message: "no se pudieron resolver los permisos, intente más tarde",
		})
	}
	c.Locals(LocalActor, actor)
	return actor, true, nil
}

// GetActor devuelve el actor del contexto (después de ResolveActor o RequirePermission).
func GetActor(c *fiber.Ctx) *authz.Actor {
	v := c.Locals(LocalActor)
	if v == nil {
		return nil
	}
	actor, _ := v.(*authz.Actor)
	return actor
}
