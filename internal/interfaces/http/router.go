package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messmate-api/internal/application/auth"
	"github.com/jhoicas/messmate-api/internal/application/usecase"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	FoodItemUC *usecase.FoodItemUseCase
	VariantUC  *usecase.VariantUseCase
	MenuPDFUC  *usecase.MenuPDFUseCase
	Denylist   repository.TokenDenylist
	JWTSecret  string
	AppName    string
	Dev        bool
}

// Router registra las rutas de la API.
// Las rutas literales (/deleted, /all) van antes que las paramétricas (/:id).
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	protected := AuthMiddleware(deps.JWTSecret, deps.Denylist)

	// Auth (público salvo logout, que requiere token). El reset acepta el token
	// en la URL (link del correo) o en el body.
	authHandler := NewAuthHandler(deps.AuthUC, deps.Dev)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Post("/reset-password/:token", authHandler.ResetPassword)
	authGroup.Post("/logout", protected, authHandler.Logout)

	// Usuario autenticado
	userHandler := NewUserHandler(deps.AuthUC, deps.Dev)
	users := api.Group("/users", protected)
	users.Get("/profile", userHandler.Profile)
	users.Post("/update-password", userHandler.UpdatePassword)

	menu := api.Group("/menu")

	// Carta en PDF (público)
	menuPDFHandler := NewMenuPDFHandler(deps.MenuPDFUC, deps.AppName, deps.Dev)
	menu.Get("/pdf", menuPDFHandler.Download)

	// Categorías
	categoryHandler := NewCategoryHandler(deps.CategoryUC, deps.Dev)
	categories := menu.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Get("/deleted", protected, categoryHandler.ListDeleted)
	categories.Get("/all", protected, categoryHandler.ListAll)
	categories.Post("/", protected, categoryHandler.Create)
	categories.Put("/:id", protected, categoryHandler.Update)
	categories.Delete("/:id", protected, categoryHandler.Delete)
	categories.Patch("/:id/restore", protected, categoryHandler.Restore)

	// Items del menú
	itemHandler := NewFoodItemHandler(deps.FoodItemUC, deps.Dev)
	items := menu.Group("/items")
	items.Get("/", itemHandler.List)
	items.Get("/deleted", protected, itemHandler.ListDeleted)
	items.Get("/all", protected, itemHandler.ListAll)
	items.Post("/", protected, itemHandler.Create)
	items.Put("/:id", protected, itemHandler.Update)
	items.Delete("/:id", protected, itemHandler.Delete)
	items.Patch("/:id/restore", protected, itemHandler.Restore)

	// Variantes anidadas bajo el item
	variantHandler := NewVariantHandler(deps.VariantUC, deps.Dev)
	items.Get("/:itemId/variants", variantHandler.ListByItem)
	items.Get("/:itemId/variants/deleted", protected, variantHandler.ListDeletedByItem)
	items.Get("/:itemId/variants/all", protected, variantHandler.ListAllByItem)
	items.Post("/:itemId/variants", protected, variantHandler.Create)

	variants := menu.Group("/variants")
	variants.Put("/:id", protected, variantHandler.Update)
	variants.Delete("/:id", protected, variantHandler.Delete)
	variants.Patch("/:id/restore", protected, variantHandler.Restore)

	// Item por id al final para no capturar /deleted ni /all
	items.Get("/:id", itemHandler.GetByID)
}
