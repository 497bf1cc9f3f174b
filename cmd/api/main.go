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
	"github.com/jhoicas/messmate-api/internal/application/auth"
	"github.com/jhoicas/messmate-api/internal/application/usecase"
	inframail "github.com/jhoicas/messmate-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/messmate-api/internal/infrastructure/pdf"
	"github.com/jhoicas/messmate-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/messmate-api/internal/interfaces/http"
	"github.com/jhoicas/messmate-api/pkg/config"
	"github.com/jhoicas/messmate-api/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	itemRepo := postgres.NewFoodItemRepository(pool)
	variantRepo := postgres.NewVariantRepository(pool)
	denylist := postgres.NewDenylistRepository(pool)

	mailer := inframail.NewSMTPMailer(cfg.SMTP)
	authUC := auth.NewAuthUseCase(userRepo, denylist, mailer, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.PublicURL)

	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	itemUC := usecase.NewFoodItemUseCase(itemRepo, categoryRepo)
	variantUC := usecase.NewVariantUseCase(variantRepo, itemRepo)

	// PDF: la carta del menú con categorías e items vivos
	pdfGenerator := infrapdf.NewMarotoMenuGenerator()
	menuPDFUC := usecase.NewMenuPDFUseCase(categoryRepo, itemRepo, variantRepo, pdfGenerator)

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
		Title:    "MessMate API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CategoryUC: categoryUC,
		FoodItemUC: itemUC,
		VariantUC:  variantUC,
		MenuPDFUC:  menuPDFUC,
		Denylist:   denylist,
		JWTSecret:  cfg.JWT.Secret,
		AppName:    cfg.App.Name,
		Dev:        !cfg.App.IsProduction(),
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
