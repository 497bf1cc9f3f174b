package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/messmate-api/internal/domain/entity"
	"github.com/jhoicas/messmate-api/internal/domain/repository"
)

// MenuLine una línea imprimible del menú: item o variante con su precio.
type MenuLine struct {
	Name        string
	Description string
	Price       decimal.Decimal
	IsAvailable bool
	Variants    []MenuVariantLine
}

// MenuVariantLine variante de un item con su precio adicional.
type MenuVariantLine struct {
	Name        string
	Price       decimal.Decimal
	IsAvailable bool
}

// MenuSection una categoría viva con sus items vivos.
type MenuSection struct {
	Category    string
	Description string
	Lines       []MenuLine
}

// MenuPDFGenerator puerto para renderizar la carta del menú como PDF.
type MenuPDFGenerator interface {
	GenerateMenuPDF(ctx context.Context, title string, sections []MenuSection) ([]byte, error)
}

// MenuPDFUseCase arma la carta del menú (solo registros vivos) y la renderiza.
type MenuPDFUseCase struct {
	categoryRepo repository.CategoryRepository
	itemRepo     repository.FoodItemRepository
	variantRepo  repository.VariantRepository
	generator    MenuPDFGenerator
}

// NewMenuPDFUseCase construye el caso de uso.
func NewMenuPDFUseCase(
	categoryRepo repository.CategoryRepository,
	itemRepo repository.FoodItemRepository,
	variantRepo repository.VariantRepository,
	generator MenuPDFGenerator,
) *MenuPDFUseCase {
	return &MenuPDFUseCase{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		variantRepo:  variantRepo,
		generator:    generator,
	}
}

// Generate arma las secciones del menú en orden de creación y devuelve el PDF.
// Las categorías sin items vivos se omiten de la carta.
func (uc *MenuPDFUseCase) Generate(ctx context.Context, title string) ([]byte, error) {
	categories, err := uc.categoryRepo.List(entity.VisibilityLive)
	if err != nil {
		return nil, err
	}
	sections := make([]MenuSection, 0, len(categories))
	for _, c := range categories {
		items, err := uc.itemRepo.ListByCategory(c.ID, entity.VisibilityLive)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			continue
		}
		section := MenuSection{Category: c.Name, Description: c.Description}
		for _, it := range items {
			line := MenuLine{
				Name:        it.Name,
				Description: it.Description,
				Price:       it.Price,
				IsAvailable: it.IsAvailable,
			}
			variants, err := uc.variantRepo.ListByFoodItem(it.ID, entity.VisibilityLive)
			if err != nil {
				return nil, err
			}
			for _, va := range variants {
				line.Variants = append(line.Variants, MenuVariantLine{
					Name:        va.Name,
					Price:       va.Price,
					IsAvailable: va.IsAvailable,
				})
			}
			section.Lines = append(section.Lines, line)
		}
		sections = append(sections, section)
	}
	return uc.generator.GenerateMenuPDF(ctx, title, sections)
}
