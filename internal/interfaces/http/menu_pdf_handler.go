package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/messmate-api/internal/application/usecase"
)

// MenuPDFHandler expone la carta del menú en formato PDF.
type MenuPDFHandler struct {
	uc      *usecase.MenuPDFUseCase
	appName string
	dev     bool
}

// NewMenuPDFHandler construye el handler.
func NewMenuPDFHandler(uc *usecase.MenuPDFUseCase, appName string, dev bool) *MenuPDFHandler {
	return &MenuPDFHandler{uc: uc, appName: appName, dev: dev}
}

// Download godoc
// @Summary      Descargar la carta del menú en PDF
// @Description  Genera un PDF con las categorías vivas y sus items y variantes vivos.
// @Tags         menu
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/menu/pdf [get]
func (h *MenuPDFHandler) Download(c *fiber.Ctx) error {
	pdf, err := h.uc.Generate(c.Context(), h.appName)
	if err != nil {
		return respondDomainError(c, err, h.dev)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="menu.pdf"`)
	return c.Send(pdf)
}
