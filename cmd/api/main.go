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
	"github.com/jhoicas/Leadflow-api/internal/application/analytics"
	"github.com/jhoicas/Leadflow-api/internal/application/auth"
	"github.com/jhoicas/Leadflow-api/internal/application/leads"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Leadflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/Leadflow-api/internal/infrastructure/worker"
	httpRouter "github.com/jhoicas/Leadflow-api/internal/interfaces/http"
	"github.com/jhoicas/Leadflow-api/pkg/config"
	"github.com/jhoicas/Leadflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	leadRepo := postgres.NewLeadRepository(pool)
	demoRepo := postgres.NewDemoRepository(pool)
	integrationRepo := postgres.NewIntegrationRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	notifRepo := postgres.NewNotificationRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	codec := spreadsheet.NewCodec()
	receiptGen := infrapdf.NewReceiptGenerator()

	lifecycleUC := lifecycle.NewUseCase(txRunner)
	leadUC := leads.NewUseCase(leadRepo, notifRepo, txRunner, codec)
	analyticsUC := analytics.NewUseCase(analyticsRepo)
	demoUC := usecase.NewDemoUseCase(demoRepo)
	integrationUC := usecase.NewIntegrationUseCase(integrationRepo)
	paymentUC := usecase.NewPaymentUseCase(paymentRepo, leadRepo, receiptGen)
	notificationUC := usecase.NewNotificationUseCase(notifRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	expiryWorker := worker.NewDemoExpiryWorker(
		leadRepo, demoRepo, notifRepo,
		time.Duration(cfg.Worker.TickMinutes)*time.Minute,
		log,
	)
	if cfg.Worker.Enabled {
		go expiryWorker.Start(ctx)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "LeadFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LeadUC:         leadUC,
		LifecycleUC:    lifecycleUC,
		AnalyticsUC:    analyticsUC,
		DemoUC:         demoUC,
		IntegrationUC:  integrationUC,
		PaymentUC:      paymentUC,
		NotificationUC: notificationUC,
		UserUC:         userUC,
		AuthUC:         authUC,
		ExpiryChecker:  expiryWorker,
		JWTSecret:      cfg.JWT.Secret,
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
	cancel() // detiene el worker

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
