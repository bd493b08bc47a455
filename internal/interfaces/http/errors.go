package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/visor-clientes/internal/application/dto"
	"github.com/jhoicas/visor-clientes/internal/domain"
)

// respondError traduce errores de dominio a status HTTP con un código estable.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "cliente no encontrado"})
	case errors.Is(err, domain.ErrSessionNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "SESSION_NOT_FOUND", Message: "sesión no encontrada o expirada"})
	case errors.Is(err, domain.ErrNoSelection):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NO_SELECTION", Message: "no hay cliente seleccionado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// badRequest respuesta 400 para parámetros o cuerpo mal formados.
func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
