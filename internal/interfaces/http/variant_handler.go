package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/application/usecase"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

// VariantHandler maneja las peticiones HTTP para variantes de items.
type VariantHandler struct {
	uc  *usecase.VariantUseCase
	dev bool
}

// NewVariantHandler construye el handler.
func NewVariantHandler(uc *usecase.VariantUseCase, dev bool) *VariantHandler {
	return &VariantHandler{uc: uc, dev: dev}
}

// ListByItem godoc
// @Summary      Listar variantes vivas de un item
// @Tags         menu
// @Produce      json
// @Param        itemId  path  string  true  "ID del item"
// @Success      200  {object}  dto.VariantListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/items/{itemId}/variants [get]
func (h *VariantHandler) ListByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByFoodItem(c.Params("itemId"), entity.VisibilityLive)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	if len(out.Variants) == 0 {
		return errJSON(c, fiber.StatusNotFound, "NOT_FOUND", "el item no tiene variantes")
	}
	return c.JSON(out)
}

// ListDeletedByItem godoc
// @Summary      Listar variantes borradas de un item
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del item"
// @Success      200  {object}  dto.VariantListResponse
// @Router       /api/menu/items/{itemId}/variants/deleted [get]
func (h *VariantHandler) ListDeletedByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByFoodItem(c.Params("itemId"), entity.VisibilityDeleted)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// ListAllByItem godoc
// @Summary      Listar todas las variantes de un item (vivas + borradas)
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        itemId  path  string  true  "ID del item"
// @Success      200  {object}  dto.VariantListResponse
// @Router       /api/menu/items/{itemId}/variants/all [get]
func (h *VariantHandler) ListAllByItem(c *fiber.Ctx) error {
	out, err := h.uc.ListByFoodItem(c.Params("itemId"), entity.VisibilityAll)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear variante bajo un item vivo
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        itemId  path  string  true  "ID del item"
// @Param        body    body  dto.CreateVariantRequest  true  "name, price"
// @Success      201   {object}  dto.VariantResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/menu/items/{itemId}/variants [post]
func (h *VariantHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVariantRequest
	if err := c.BodyParser(&in); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	if err := in.Validate(); err != nil {
		return errJSON(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	out, err := h.uc.Create(c.Params("itemId"), in)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar variante viva
// @Tags         menu
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la variante"
// @Param        body  body  dto.UpdateVariantRequest  true  "campos opcionales"
// @Success      200   {object}  dto.VariantResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/menu/variants/{id} [put]
func (h *VariantHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateVariantRequest
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
// @Summary      Borrar variante (lógico)
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la variante"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/menu/variants/{id} [delete]
func (h *VariantHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(dto.MessageResponse{Message: "variante borrada correctamente"})
}

// Restore godoc
// @Summary      Restaurar variante borrada
// @Tags         menu
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la variante"
// @Success      200  {object}  dto.VariantResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/menu/variants/{id}/restore [patch]
func (h *VariantHandler) Restore(c *fiber.Ctx) error {
	out, err := h.uc.Restore(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	return c.JSON(out)
}
