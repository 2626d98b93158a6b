package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Leadflow-api/internal/application/analytics"
	"github.com/jhoicas/Leadflow-api/internal/application/auth"
	"github.com/jhoicas/Leadflow-api/internal/application/leads"
	"github.com/jhoicas/Leadflow-api/internal/application/lifecycle"
	"github.com/jhoicas/Leadflow-api/internal/application/usecase"
	"github.com/jhoicas/Leadflow-api/internal/domain/entity"
)

// DemoExpiryChecker permite forzar la revisión de demos por vencer desde la
// API; la implementa el worker.
type DemoExpiryChecker interface {
	RunOnce(ctx context.Context) (int, error)
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LeadUC         *leads.UseCase
	LifecycleUC    *lifecycle.UseCase
	AnalyticsUC    *analytics.UseCase
	DemoUC         *usecase.DemoUseCase
	IntegrationUC  *usecase.IntegrationUseCase
	PaymentUC      *usecase.PaymentUseCase
	NotificationUC *usecase.NotificationUseCase
	UserUC         *usecase.UserUseCase
	AuthUC         *auth.AuthUseCase
	ExpiryChecker  DemoExpiryChecker
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Leads (protegido)
	leadGroup := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC, deps.LifecycleUC)
	leadGroup.Get("/", leadHandler.List)
	leadGroup.Post("/", leadHandler.Create)
	leadGroup.Post("/import", leadHandler.Import)
	leadGroup.Get("/export", leadHandler.Export)
	leadGroup.Get("/template", leadHandler.Template)
	leadGroup.Get("/:id", leadHandler.GetByID)
	leadGroup.Put("/:id", leadHandler.Update)
	leadGroup.Delete("/:id", leadHandler.Delete)
	leadGroup.Post("/:id/call", leadHandler.RecordCall)

	// Demos (protegido)
	demoGroup := protected.Group("/demos")
	demoHandler := NewDemoHandler(deps.DemoUC, deps.LifecycleUC)
	demoGroup.Get("/", demoHandler.List)
	demoGroup.Post("/", demoHandler.Assign)
	demoGroup.Post("/:id/outcome", demoHandler.Outcome)
	demoGroup.Put("/:id", demoHandler.Update)
	demoGroup.Delete("/:id", demoHandler.Delete)

	// Integrations (protegido)
	integrationGroup := protected.Group("/integrations")
	integrationHandler := NewIntegrationHandler(deps.IntegrationUC, deps.LifecycleUC)
	integrationGroup.Get("/", integrationHandler.List)
	integrationGroup.Post("/", integrationHandler.Start)
	integrationGroup.Put("/:id", integrationHandler.Update)
	integrationGroup.Delete("/:id", integrationHandler.Delete)

	// Payments (protegido)
	paymentGroup := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC, deps.LifecycleUC)
	paymentGroup.Get("/", paymentHandler.List)
	paymentGroup.Post("/", paymentHandler.Record)
	paymentGroup.Get("/:id", paymentHandler.GetByID)
	paymentGroup.Get("/:id/receipt", paymentHandler.Receipt)
	paymentGroup.Put("/:id", paymentHandler.Update)
	paymentGroup.Delete("/:id", paymentHandler.Delete)

	// Notifications (protegido)
	notifGroup := protected.Group("/notifications")
	notifHandler := NewNotificationHandler(deps.NotificationUC)
	notifGroup.Get("/", notifHandler.List)
	notifGroup.Post("/", notifHandler.Create)
	notifGroup.Put("/:id/read", notifHandler.MarkRead)
	notifGroup.Delete("/:id", notifHandler.Delete)
	if deps.ExpiryChecker != nil {
		notifGroup.Post("/check-demos", func(c *fiber.Ctx) error {
			created, err := deps.ExpiryChecker.RunOnce(c.Context())
			if err != nil {
				return respondError(c, err)
			}
			return c.JSON(fiber.Map{"created": created})
		})
	}

	// Dashboard y reportes (protegido)
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/dashboard", dashboardHandler.Metrics)

	reportGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.AnalyticsUC)
	reportGroup.Get("/funnel", reportHandler.Funnel)
	reportGroup.Get("/sources", reportHandler.Sources)
	reportGroup.Get("/demos", reportHandler.Demos)
	reportGroup.Get("/status", reportHandler.StatusDistribution)

	// Users (protegido, solo Admin)
	userGroup := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	userGroup.Get("/", userHandler.List)
	userGroup.Post("/", userHandler.Create)
	userGroup.Get("/:id", userHandler.GetByID)
	userGroup.Put("/:id", userHandler.Update)
	userGroup.Delete("/:id", userHandler.Delete)
}
