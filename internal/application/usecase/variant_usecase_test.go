package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/messmate-api/internal/application/dto"
	"github.com/jhoicas/messmate-api/internal/domain"
	"github.com/jhoicas/messmate-api/internal/domain/entity"
)

// Una variante solo puede crearse bajo un item vivo.
func TestVariant_CrearRequiereItemVivo(t *testing.T) {
	f := newMenuFixture()
	cat := mustCreateCategory(t, f.categoryUC, "Bebidas")
	tea := mustCreateItem(t, f, cat.ID, "Té", "2.00")
	require.NoError(t, f.itemUC.Delete(tea.ID))

	_, err := f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "Grande",
		Price: decimal.RequireFromString("0.50"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"crear bajo item borrado debe fallar")
}

// La unicidad del nombre de variante es por item.
func TestVariant_UnicidadPorItem(t *testing.T) {
	f := newMenuFixture()
	cat := mustCreateCategory(t, f.categoryUC, "Bebidas")
	tea := mustCreateItem(t, f, cat.ID, "Té", "2.00")
	coffee := mustCreateItem(t, f, cat.ID, "Café", "2.50")

	_, err := f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "Grande",
		Price: decimal.RequireFromString("0.50"),
	})
	require.NoError(t, err)

	_, err = f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "grande ",
		Price: decimal.RequireFromString("0.60"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"'grande ' colisiona con 'Grande' en el mismo item")

	_, err = f.variantUC.Create(coffee.ID, dto.CreateVariantRequest{
		Name:  "Grande",
		Price: decimal.RequireFromString("0.70"),
	})
	assert.NoError(t, err, "el mismo nombre en otro item es válido")
}

// Listar variantes de un item inexistente o borrado es not found.
func TestVariant_ListarRequiereItemVivo(t *testing.T) {
	f := newMenuFixture()
	cat := mustCreateCategory(t, f.categoryUC, "Bebidas")
	tea := mustCreateItem(t, f, cat.ID, "Té", "2.00")
	require.NoError(t, f.itemUC.Delete(tea.ID))

	_, err := f.variantUC.ListByFoodItem(tea.ID, entity.VisibilityLive)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Los listados administrativos llegan a las variantes aunque el item esté borrado;
// solo el listado público exige item vivo.
func TestVariant_ListadosAdminConItemBorrado(t *testing.T) {
	f := newMenuFixture()
	cat := mustCreateCategory(t, f.categoryUC, "Bebidas")
	tea := mustCreateItem(t, f, cat.ID, "Té", "2.00")

	live, err := f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "Grande",
		Price: decimal.RequireFromString("0.50"),
	})
	require.NoError(t, err)
	gone, err := f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "Chica",
		Price: decimal.Zero,
	})
	require.NoError(t, err)
	require.NoError(t, f.variantUC.Delete(gone.ID))

	require.NoError(t, f.itemUC.Delete(tea.ID))

	_, err = f.variantUC.ListByFoodItem(tea.ID, entity.VisibilityLive)
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"el listado público exige item vivo")

	deleted, err := f.variantUC.ListByFoodItem(tea.ID, entity.VisibilityDeleted)
	require.NoError(t, err, "el listado de borradas alcanza items borrados")
	require.Len(t, deleted.Variants, 1)
	assert.Equal(t, gone.ID, deleted.Variants[0].ID)

	all, err := f.variantUC.ListByFoodItem(tea.ID, entity.VisibilityAll)
	require.NoError(t, err)
	require.Len(t, all.Variants, 2)
	ids := []string{all.Variants[0].ID, all.Variants[1].ID}
	assert.Contains(t, ids, live.ID)
	assert.Contains(t, ids, gone.ID)
}

// Ciclo borrar/restaurar de una variante con colisión de nombre al restaurar.
func TestVariant_RestoreConColision(t *testing.T) {
	f := newMenuFixture()
	cat := mustCreateCategory(t, f.categoryUC, "Bebidas")
	tea := mustCreateItem(t, f, cat.ID, "Té", "2.00")

	first, err := f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "Grande",
		Price: decimal.RequireFromString("0.50"),
	})
	require.NoError(t, err)
	require.NoError(t, f.variantUC.Delete(first.ID))

	// Segundo borrado: ya no está viva.
	assert.ErrorIs(t, f.variantUC.Delete(first.ID), domain.ErrNotFound)

	_, err = f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "grande",
		Price: decimal.RequireFromString("0.60"),
	})
	require.NoError(t, err, "el nombre quedó libre tras el borrado")

	_, err = f.variantUC.Restore(first.ID)
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"restaurar con el nombre tomado debe colisionar")
}

// Update aplica cambios parciales y solo sobre variantes vivas.
func TestVariant_Update(t *testing.T) {
	f := newMenuFixture()
	cat := mustCreateCategory(t, f.categoryUC, "Bebidas")
	tea := mustCreateItem(t, f, cat.ID, "Té", "2.00")
	v, err := f.variantUC.Create(tea.ID, dto.CreateVariantRequest{
		Name:  "Grande",
		Price: decimal.RequireFromString("0.50"),
	})
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("0.75")
	out, err := f.variantUC.Update(v.ID, dto.UpdateVariantRequest{Price: &newPrice})
	require.NoError(t, err)
	assert.Equal(t, "Grande", out.Name)
	assert.True(t, out.Price.Equal(newPrice))

	require.NoError(t, f.variantUC.Delete(v.ID))
	_, err = f.variantUC.Update(v.ID, dto.UpdateVariantRequest{Price: &newPrice})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una variante borrada no es editable")
}
