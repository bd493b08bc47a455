package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/visor-clientes/internal/application/customers"
	"github.com/jhoicas/visor-clientes/internal/application/session"
	"github.com/jhoicas/visor-clientes/internal/domain/repository"
	infrapdf "github.com/jhoicas/visor-clientes/internal/infrastructure/pdf"
	"github.com/jhoicas/visor-clientes/internal/infrastructure/postgres"
	"github.com/jhoicas/visor-clientes/internal/infrastructure/static"
	httpRouter "github.com/jhoicas/visor-clientes/internal/interfaces/http"
	"github.com/jhoicas/visor-clientes/pkg/config"
	"github.com/jhoicas/visor-clientes/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("data_source", cfg.Data.Source).
		Msg("iniciando aplicación")

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	var (
		customerRepo    repository.CustomerRepository
		transactionRepo repository.TransactionRepository
	)
	switch cfg.Data.Source {
	case config.DataSourcePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		customerRepo = postgres.NewCustomerRepository(pool)
		transactionRepo = postgres.NewTransactionRepository(pool)
	default:
		src := static.NewSource(cfg.Data.File, cfg.Data.Charset)
		customerRepo = static.NewCustomerRepository(src)
		transactionRepo = static.NewTransactionRepository(src)
	}

	zl := log.Zerolog()
	customersUC := customers.NewUseCase(
		customerRepo, transactionRepo,
		infrapdf.NewMarotoStatementGenerator(),
		customers.Options{
			PageSize:  cfg.Viewer.PageSize,
			PageSizes: cfg.Viewer.PageSizes,
			Logger:    &zl,
		},
	)
	if _, err := customersUC.Reload(ctx); err != nil {
		log.Fatal().Err(err).Msg("carga inicial del dataset")
	}

	sessionSvc := session.NewService(session.NewStore(), customersUC)
	idle := time.Duration(cfg.Session.IdleMinutes) * time.Minute
	go pruneSessions(ctx, sessionSvc, idle, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.App.SwaggerFile,
		Path:     "docs",
		Title:    "Visor de clientes API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomersUC: customersUC,
		SessionSvc:  sessionSvc,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// pruneSessions descarta periódicamente las sesiones inactivas hasta que ctx se cancela.
func pruneSessions(ctx context.Context, svc *session.Service, idle time.Duration, log *logger.Logger) {
	ticker := time.NewTicker(idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := svc.Prune(idle); n > 0 {
				log.Debug().Int("sessions", n).Msg("sesiones inactivas descartadas")
			}
		}
	}
}
