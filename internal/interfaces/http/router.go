package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/catalog"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/application/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC  *catalog.CatalogUseCase
	MovementSv *movement.MovementService
	ReportUC   *ledger.ReportUseCase
	AuditUC    *audit.AuditUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, logout con token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/logout", authHandler.Logout)

	// Catálogo de artículos
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.CatalogUC)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/:code", itemHandler.GetByCode)
	// Edición y borrado solo para admin: pueden reescribir cantidades e historial del catálogo
	items.Put("/:code", RequireRole(entity.RoleAdmin), itemHandler.Update)
	items.Delete("/:code", RequireRole(entity.RoleAdmin), itemHandler.Delete)

	// Movimientos de stock
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.MovementSv)
	movements.Post("/exits", movementHandler.RegisterExit)
	movements.Post("/entries", movementHandler.RegisterEntry)

	// Reportes de los libros
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/exits", reportHandler.Exits)
	reports.Get("/entries", reportHandler.Entries)
	reports.Get("/exits/pdf", reportHandler.ExitsPDF)
	reports.Get("/entries/pdf", reportHandler.EntriesPDF)

	// Bitácora de auditoría (solo admin)
	auditHandler := NewAuditHandler(deps.AuditUC)
	protected.Get("/audit", RequireRole(entity.RoleAdmin), auditHandler.List)
}
