package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/visor-clientes/internal/application/dto"
)

// Header y key de Locals para la sesión interactiva.
const (
	HeaderSessionID = "X-Session-ID"
	LocalSessionID  = "session_id"
)

// RequireSession exige el header X-Session-ID y lo deja en c.Locals.
// La existencia de la sesión la valida el servicio (404 SESSION_NOT_FOUND).
func RequireSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := strings.TrimSpace(c.Get(HeaderSessionID))
		if id == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code: "MISSING_SESSION", Message: HeaderSessionID + " header requerido",
			})
		}
		c.Locals(LocalSessionID, id)
		return c.Next()
	}
}

// GetSessionID devuelve el ID de sesión del contexto (después de RequireSession).
func GetSessionID(c *fiber.Ctx) string {
	v := c.Locals(LocalSessionID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
