package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/auth"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/quotes"
	"github.com/vinces1leon/inmobiliaria-mye/internal/application/units"
	"github.com/vinces1leon/inmobiliaria-mye/internal/domain/authz"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.UseCase
	UnitUC      *units.UseCase
	CreateQuote *quotes.CreateQuoteUseCase
	QuoteUC     *quotes.UseCase
	QuotePDF    *quotes.PDFUseCase
	JWTSecret   string
}

// Router registra las rutas de la API. La autorización por rol se decide en la
// política del dominio (authz.Can), consultada vía RequirePermission.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Departamentos: lectura para cualquier rol autenticado, escritura solo admin
	unitHandler := NewUnitHandler(deps.UnitUC)
	unitsGroup := protected.Group("/units")
	unitsGroup.Get("/", unitHandler.List)
	unitsGroup.Get("/:id", unitHandler.GetByID)
	manage := RequirePermission(authz.ManageUnits)
	unitsGroup.Post("/", manage, unitHandler.Create)
	unitsGroup.Put("/:id", manage, unitHandler.Update)
	unitsGroup.Delete("/:id", manage, unitHandler.Delete)
	unitsGroup.Post("/:id/photo", manage, unitHandler.UploadPhoto)

	// Cotizaciones: admin y vendedor
	quoteHandler := NewQuoteHandler(deps.CreateQuote, deps.QuoteUC, deps.QuotePDF)
	quotesGroup := protected.Group("/quotes", RequirePermission(authz.IssueQuotes))
	quotesGroup.Post("/", quoteHandler.Create)
	quotesGroup.Get("/", quoteHandler.List)
	quotesGroup.Get("/:id", quoteHandler.GetByID)
	quotesGroup.Get("/:id/pdf", quoteHandler.DownloadPDF)
	quotesGroup.Delete("/:id", RequirePermission(authz.DeleteQuotes), quoteHandler.Delete)
}
