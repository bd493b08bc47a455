package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/visor-clientes/internal/application/customers"
	"github.com/jhoicas/visor-clientes/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomersUC *customers.UseCase
	SessionSvc  *session.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Tabla, detalle, gráfica y extracto (sin estado)
	customerHandler := NewCustomerHandler(deps.CustomersUC)
	customersGroup := api.Group("/customers")
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Get("/:id", customerHandler.GetByID)
	customersGroup.Get("/:id/chart", customerHandler.Chart)
	customersGroup.Get("/:id/statement.pdf", customerHandler.Statement)

	api.Post("/dataset/reload", customerHandler.Reload)

	// Sesión interactiva
	sessionHandler := NewSessionHandler(deps.SessionSvc)
	api.Post("/sessions", sessionHandler.Create)

	// Middleware por ruta: un Use sobre /api/session también capturaría /api/sessions.
	requireSession := RequireSession()
	sess := api.Group("/session")
	sess.Get("/", requireSession, sessionHandler.Get)
	sess.Put("/query", requireSession, sessionHandler.SetQuery)
	sess.Put("/page", requireSession, sessionHandler.SetPage)
	sess.Put("/selection", requireSession, sessionHandler.Select)
	sess.Delete("/selection", requireSession, sessionHandler.ClearSelection)
	sess.Get("/view", requireSession, sessionHandler.View)
	sess.Get("/chart", requireSession, sessionHandler.Chart)
}
