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

	_ "github.com/jhoicas/luviel-fluxo/docs"
	appanalytics "github.com/jhoicas/luviel-fluxo/internal/application/analytics"
	"github.com/jhoicas/luviel-fluxo/internal/application/auth"
	"github.com/jhoicas/luviel-fluxo/internal/application/cashflow"
	"github.com/jhoicas/luviel-fluxo/internal/application/inventory"
	"github.com/jhoicas/luviel-fluxo/internal/application/sales"
	"github.com/jhoicas/luviel-fluxo/internal/application/usecase"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/localdb"
	infrapdf "github.com/jhoicas/luviel-fluxo/internal/infrastructure/pdf"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/storage"
	"github.com/jhoicas/luviel-fluxo/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/luviel-fluxo/internal/interfaces/http"
	"github.com/jhoicas/luviel-fluxo/pkg/config"
	"github.com/jhoicas/luviel-fluxo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, err := storage.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir store")
	}
	defer db.Close()

	userRepo := localdb.NewUserRepository(db)
	productRepo := localdb.NewProductRepository(db)
	saleRepo := localdb.NewSaleRepository(db)
	damageRepo := localdb.NewDamageRepository(db)
	cashRepo := localdb.NewCashEntryRepository(db)

	loc, err := cfg.Locale.Location()
	if err != nil {
		log.Warn().Err(err).Str("timezone", cfg.Locale.Timezone).Msg("zona horaria inválida, usando hora local")
	}

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	userUC := usecase.NewUserUseCase(userRepo, log)
	productUC := usecase.NewProductUseCase(productRepo, log)
	salesUC := sales.NewSalesUseCase(userRepo, productRepo, saleRepo, cashRepo, log)
	damageUC := inventory.NewDamageUseCase(productRepo, damageRepo, log)
	cashFlowUC := cashflow.NewCashFlowUseCase(cashRepo, log)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, saleRepo)

	// Reportes: PDF (maroto) y XML con digest canónico
	reportUC := appanalytics.NewReportUseCase(
		saleRepo, cashRepo,
		infrapdf.NewMarotoPDFGenerator(loc), xmlexport.NewExporter(),
		loc,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Luviel Fluxo API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "store": cfg.Store.Driver})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		ProductUC:   productUC,
		SalesUC:     salesUC,
		DamageUC:    damageUC,
		CashFlowUC:  cashFlowUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
