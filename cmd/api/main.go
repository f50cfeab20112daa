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
	"github.com/shopspring/decimal"

	"github.com/vinces1leon/inmobiliaria-mye/internal/application/auth"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/quotes"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/units"
	infrapdf "github.com/vinces1leon/inmobiliaria-mye/internal/infrastructure/pdf"
	"github.com/vinces1leon/inmobiliaria-mye/internal/infrastructure/postgres"
	"github.com/vinces1leon/inmobiliaria-mye/internal/infrastructure/storage"
	httpRouter "github.com/vinces1leon/inmobiliaria-mye/internal/interfaces/http"
	"github.com/vinces1leon/inmobiliaria-mye/pkg/config"
	"github.com/vinces1leon/inmobiliaria-mye/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	photoStore, err := storage.NewMinIOStore(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MinIO")
	}

	userRepo := postgres.NewUserRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	quoteRepo := postgres.NewQuoteRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	business := quotes.Business{
		Markup:        decimal.NewFromInt(cfg.Business.Markup),
		SeparationFee: decimal.NewFromInt(cfg.Business.SeparationFee),
		ValidDays:     cfg.Business.QuoteValidDays,
	}

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	unitUC := units.NewUseCase(unitRepo, photoStore)
	createQuoteUC := quotes.NewCreateQuoteUseCase(txRunner, unitRepo, business)
	quoteUC := quotes.NewUseCase(quoteRepo)

	pdfGenerator := infrapdf.NewQuoteGenerator(cfg.Business)
	quotePDFUC := quotes.NewPDFUseCase(quoteRepo, unitRepo, photoStore, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la generación de PDF con foto puede tardar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    10 * 1024 * 1024, // fotos de departamentos
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inmobiliaria MyE API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UnitUC:      unitUC,
		CreateQuote: createQuoteUC,
		QuoteUC:     quoteUC,
		QuotePDF:    quotePDFUC,
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
