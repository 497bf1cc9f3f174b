package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/application/usecase"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

// FoodItemHandler maneja las peticiones HTTP para items del menú.
type FoodItemHandler struct {
	uc  *usecase.FoodItemUseCase
	dev bool
}

// NewFoodItemHandler construye el handler.
func NewFoodItemHandler(uc *usecase.FoodItemUseCase, dev bool) *FoodItemHandler {
	return &FoodItemHandler{uc: uc, dev: dev}
}

// List godoc
// @Summary      Listar items vivos del menú
// @Tags         menu
// @Produce      json
// @Success      200  {object}  dto.FoodItemListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/items [get]
func (h *FoodItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.VisibilityLive)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	if len(out.Items) == 0 {
		return errJSON(c, fiber.StatusNotFound, "NOT_FOUND", "no hay items creados")
	}
	return c.JSON(out)
}

// ListDeleted godoc
// @Summary      Listar items borrados
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FoodItemListResponse
// @Router       /api/menu/items/deleted [get]
func (h *FoodItemHandler) ListDeleted(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.VisibilityDeleted)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los items (vivos + borrados)
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.FoodItemListResponse
// @Router       /api/menu/items/all [get]
func (h *FoodItemHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.List(entity.VisibilityAll)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener item vivo por ID
// @Tags         menu
// @Produce      json
// @Param        id  path  string  true  "ID del item"
// @Success      200  {object}  dto.FoodItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/items/{id} [get]
func (h *FoodItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item del menú (la categoría debe estar viva)
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFoodItemRequest  true  "name, category_id, price"
// @Success      201   {object}  dto.FoodItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/menu/items [post]
func (h *FoodItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFoodItemRequest
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
// @Summary      Actualizar item vivo
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del item"
// @Param        body  body  dto.UpdateFoodItemRequest  true  "campos opcionales"
// @Success      200   {object}  dto.FoodItemResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/menu/items/{id} [put]
func (h *FoodItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFoodItemRequest
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
// @Summary      Borrar item (lógico, no cascada sobre sus variantes)
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del item"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/items/{id} [delete]
func (h *FoodItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(dto.MessageResponse{Message: "item borrado correctamente"})
}

// Restore godoc
// @Summary      Restaurar item borrado
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del item"
// @Success      200  {object}  dto.FoodItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/menu/items/{id}/restore [patch]
func (h *FoodItemHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}
