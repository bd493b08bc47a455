package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/visor-clientes/internal/application/dto"
	"github.com/jhoicas/visor-clientes/internal/application/session"
)

// SessionHandler maneja el estado de la sesión: búsqueda, página y cliente seleccionado.
type SessionHandler struct {
	svc *session.Service
}

// NewSessionHandler construye el handler.
func NewSessionHandler(svc *session.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

// Create godoc
// @Summary      Abre una sesión del visor
// @Tags         session
// @Produce      json
// @Success      201  {object}  dto.SessionDTO
// @Router       /api/sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	st, err := h.svc.Create()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(st)
}

// Get godoc
// @Summary      Estado de la sesión
// @Tags         session
// @Produce      json
// @Param        X-Session-ID  header  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	st, err := h.svc.Get(GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// SetQuery godoc
// @Summary      Actualiza la búsqueda y vuelve a la primera página
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  true  "ID de sesión"
// @Param        body  body  dto.SetQueryRequest  true  "query"
// @Success      200  {object}  dto.SessionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session/query [put]
func (h *SessionHandler) SetQuery(c *fiber.Ctx) error {
	var in dto.SetQueryRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	st, err := h.svc.SetQuery(GetSessionID(c), in.Query)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// SetPage godoc
// @Summary      Cambia página y tamaño de página
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  true  "ID de sesión"
// @Param        body  body  dto.PageRequest  true  "page, page_size (0 conserva el actual)"
// @Success      200  {object}  dto.SessionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session/page [put]
func (h *SessionHandler) SetPage(c *fiber.Ctx) error {
	var in dto.PageRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	st, err := h.svc.SetPage(c.UserContext(), GetSessionID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// Select godoc
// @Summary      Selecciona un cliente (abre la gráfica)
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        X-Session-ID  header  string  true  "ID de sesión"
// @Param        body  body  dto.SelectCustomerRequest  true  "customer_id"
// @Success      200  {object}  dto.SessionDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session/selection [put]
func (h *SessionHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectCustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	st, err := h.svc.SelectCustomer(c.UserContext(), GetSessionID(c), in.CustomerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// ClearSelection godoc
// @Summary      Quita la selección (cierra la gráfica)
// @Tags         session
// @Produce      json
// @Param        X-Session-ID  header  string  true  "ID de sesión"
// @Success      200  {object}  dto.SessionDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session/selection [delete]
func (h *SessionHandler) ClearSelection(c *fiber.Ctx) error {
	st, err := h.svc.ClearSelection(GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(st)
}

// View godoc
// @Summary      Página de la tabla según búsqueda y página de la sesión
// @Tags         session
// @Produce      json
// @Param        X-Session-ID  header  string  true  "ID de sesión"
// @Success      200  {object}  dto.CustomerPageDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session/view [get]
func (h *SessionHandler) View(c *fiber.Ctx) error {
	page, err := h.svc.View(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(page)
}

// Chart godoc
// @Summary      Gráfica del cliente seleccionado
// @Description  404 NO_SELECTION si no hay cliente seleccionado.
// @Tags         session
// @Produce      json
// @Param        X-Session-ID  header  string  true  "ID de sesión"
// @Success      200  {object}  dto.ChartDTO
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/session/chart [get]
func (h *SessionHandler) Chart(c *fiber.Ctx) error {
	chart, err := h.svc.Chart(c.UserContext(), GetSessionID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(chart)
}
