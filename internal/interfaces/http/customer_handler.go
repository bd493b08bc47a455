package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/visor-clientes/internal/application/customers"
	"github.com/jhoicas/visor-clientes/internal/application/dto"
)

// CustomerHandler maneja la tabla de clientes, el detalle, la gráfica y el extracto.
type CustomerHandler struct {
	uc *customers.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customers.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List godoc
// @Summary      Tabla de clientes filtrada, paginada y resaltada
// @Tags         customers
// @Produce      json
// @Param        q          query  string  false  "texto de búsqueda (nombre o monto)"
// @Param        page       query  int     false  "página, base 0"
// @Param        page_size  query  int     false  "5, 10 o 15"
// @Success      200  {object}  dto.CustomerPageDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", "page debe ser un entero")
	}
	size, err := queryInt(c, "page_size")
	if err != nil {
		return badRequest(c, "INVALID_PARAMS", "page_size debe ser un entero")
	}
	result, err := h.uc.Search(c.UserContext(), dto.SearchRequest{
		Query:       utils.CopyString(c.Query("q")),
		PageRequest: dto.PageRequest{Page: page, PageSize: size},
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// GetByID godoc
// @Summary      Cliente con sus transacciones
// @Tags         customers
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	id, err := customerIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un entero")
	}
	customer, err := h.uc.GetCustomer(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(customer)
}

// Chart godoc
// @Summary      Serie fecha vs monto del cliente
// @Tags         customers
// @Produce      json
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {object}  dto.ChartDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/chart [get]
func (h *CustomerHandler) Chart(c *fiber.Ctx) error {
	id, err := customerIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un entero")
	}
	chart, err := h.uc.Chart(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(chart)
}

// Statement godoc
// @Summary      Extracto PDF del cliente
// @Tags         customers
// @Produce      application/pdf
// @Param        id  path  int  true  "ID del cliente"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/statement.pdf [get]
func (h *CustomerHandler) Statement(c *fiber.Ctx) error {
	id, err := customerIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", "id debe ser un entero")
	}
	doc, err := h.uc.Statement(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cliente-`+strconv.FormatInt(id, 10)+`.pdf"`)
	return c.Send(doc)
}

// Reload godoc
// @Summary      Recarga clientes y transacciones desde el origen
// @Tags         dataset
// @Produce      json
// @Success      200  {object}  dto.DatasetDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dataset/reload [post]
func (h *CustomerHandler) Reload(c *fiber.Ctx) error {
	ds, err := h.uc.Reload(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(ds)
}

func customerIDParam(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// queryInt lee un entero opcional; ausente = 0.
func queryInt(c *fiber.Ctx, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
