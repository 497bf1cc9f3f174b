package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/application/usecase"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

// CategoryHandler maneja las peticiones HTTP para categorías del menú.
type CategoryHandler struct {
	uc  *usecase.CategoryUseCase
	dev bool
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase, dev bool) *CategoryHandler {
	return &CategoryHandler{uc: uc, dev: dev}
}

// List godoc
// @Summary      Listar categorías vivas
// @Tags         menu
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.VisibilityLive)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	if len(out.Categories) == 0 {
		return errJSON(c, fiber.StatusNotFound, "NOT_FOUND", "no hay categorías creadas")
	}
	return c.JSON(out)
}

// ListDeleted godoc
// @Summary      Listar categorías borradas
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/menu/categories/deleted [get]
func (h *CategoryHandler) ListDeleted(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.VisibilityDeleted)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todas las categorías (vivas + borradas)
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/menu/categories/all [get]
func (h *CategoryHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.VisibilityAll)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear categoría
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCategoryRequest  true  "name, description?"
// @Success      201   {object}  dto.CategoryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/menu/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar categoría viva
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.UpdateCategoryRequest  true  "campos opcionales"
// @Success      200   {object}  dto.CategoryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/menu/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar categoría (lógico, no cascada sobre sus items)
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(dto.MessageResponse{Message: "categoría borrada correctamente"})
}

// Restore godoc
// @Summary      Restaurar categoría borrada
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/menu/categories/{id}/restore [patch]
func (h *CategoryHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}
