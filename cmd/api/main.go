package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/almacen-api/internal/application/audit"
	"github.com/tu-usuario/almacen-api/internal/application/auth"
	"github.com/tu-usuario/almacen-api/internal/application/catalog"
	"github.com/tu-usuario/almacen-api/internal/application/ledger"
	"github.com/tu-usuario/almacen-api/internal/application/movement"
	"github.com/tu-usuario/almacen-api/internal/domain/repository"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/csvstore"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/mirror"
	"github.com/tu-usuario/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/almacen-api/internal/interfaces/http"
	"github.com/tu-usuario/almacen-api/pkg/config"
	"github.com/tu-usuario/almacen-api/pkg/logger"

	pdfgen "github.com/tu-usuario/almacen-api/internal/infrastructure/pdf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		itemRepo  repository.ItemRepository
		exitRepo  repository.ExitLedgerRepository
		entryRepo repository.EntryLedgerRepository
		auditRepo repository.AuditLogRepository
		userRepo  repository.UserRepository
	)

	switch cfg.Storage.Backend {
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.Storage.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		itemRepo = postgres.NewItemRepository(pool)
		exitRepo = postgres.NewExitLedgerRepository(pool)
		entryRepo = postgres.NewEntryLedgerRepository(pool)
		auditRepo = postgres.NewAuditLogRepository(pool)
		userRepo = postgres.NewUserRepository(pool)
	default: // csv
		var m csvstore.Mirror
		if cfg.Mirror.Enabled {
			m = mirror.NewSFTPMirror(cfg.Mirror)
			log.Info().Str("host", cfg.Mirror.Host).Str("dir", cfg.Mirror.RemoteDir).Msg("espejo remoto SFTP activo")
		}
		store, err := csvstore.NewStore(cfg.Storage.DataDir, m, log.Zerolog())
		if err != nil {
			log.Fatal().Err(err).Msg("abrir almacén de datos")
		}
		itemRepo = csvstore.NewItemRepository(store)
		exitRepo = csvstore.NewExitLedgerRepository(store)
		entryRepo = csvstore.NewEntryLedgerRepository(store)
		auditRepo = csvstore.NewAuditLogRepository(store)
		userRepo = csvstore.NewUserRepository(store)
	}

	// Mutex compartido: serializa catálogo y movimientos (ver movement.MovementService).
	var storeMu sync.Mutex

	catalogUC := catalog.NewCatalogUseCase(&storeMu, itemRepo, auditRepo)
	movementSv := movement.NewMovementService(&storeMu, itemRepo, exitRepo, entryRepo, auditRepo)
	reportUC := ledger.NewReportUseCase(exitRepo, entryRepo, pdfgen.NewMarotoReportGenerator())
	auditUC := audit.NewAuditUseCase(auditRepo)
	authUC := auth.NewAuthUseCase(userRepo, auditRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		MovementSv: movementSv,
		ReportUC:   reportUC,
		AuditUC:    auditUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
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
