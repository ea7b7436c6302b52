package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/luviel-fluxo/internal/application/analytics"
	"github.com/jhoicas/luviel-fluxo/internal/application/auth"
	"github.com/jhoicas/luviel-fluxo/internal/application/cashflow"
	"github.com/jhoicas/luviel-fluxo/internal/application/inventory"
	"github.com/jhoicas/luviel-fluxo/internal/application/sales"
	"github.com/jhoicas/luviel-fluxo/internal/application/usecase"
	"github.com/jhoicas/luviel-fluxo/internal/domain/access"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	ProductUC   *usecase.ProductUseCase
	SalesUC     *sales.SalesUseCase
	DamageUC    *inventory.DamageUseCase
	CashFlowUC  *cashflow.CashFlowUseCase
	DashboardUC *appanalytics.DashboardUseCase
	ReportUC    *appanalytics.ReportUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/session", authHandler.Session)
	protected.Get("/session/pages/:page", authHandler.Navigate)
	protected.Post("/session/logout", authHandler.Logout)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Products: lectura para todos; escritura sólo con ManageProducts
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	manage := RequireCapability(access.ManageProducts)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", manage, productHandler.Create)
	products.Put("/:id", manage, productHandler.Update)
	products.Delete("/:id", manage, productHandler.Delete)

	salesGroup := protected.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	salesGroup.Post("/checkout", RequireCapability(access.RecordSales), salesHandler.Checkout)
	salesGroup.Get("/", salesHandler.List)
	salesGroup.Get("/recent", salesHandler.Recent)

	damages := protected.Group("/damages", RequireCapability(access.RecordDamages))
	inventoryHandler := NewInventoryHandler(deps.DamageUC)
	damages.Post("/", inventoryHandler.RegisterDamage)
	damages.Get("/", inventoryHandler.ListDamages)

	cash := protected.Group("/cashflow", RequireCapability(access.ManageCashFlow))
	cashHandler := NewCashFlowHandler(deps.CashFlowUC)
	cash.Get("/", cashHandler.List)
	cash.Post("/", cashHandler.Record)

	reports := protected.Group("/reports", RequireCapability(access.ViewReports))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/", reportHandler.Get)
	reports.Get("/pdf", reportHandler.GetPDF)
	reports.Get("/xml", reportHandler.GetXML)

	users := protected.Group("/users", RequireCapability(access.EditProfile))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Put("/me", userHandler.UpdateMe)
}
